package base

// Scalar matches C++ Skia's SkScalar, the float type used throughout the
// geometry and text metrics types that font/typeface/text-blob code builds
// on top of.
type Scalar = float32
