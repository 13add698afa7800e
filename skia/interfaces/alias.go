package interfaces

import (
	"github.com/zodimo/go-bidi/skia/base"
	"github.com/zodimo/go-bidi/skia/enums"
	"github.com/zodimo/go-bidi/skia/models"
)

type Scalar = base.Scalar
type MatrixType = enums.MatrixType
type Point = models.Point
type Rect = models.Rect
type RRect = models.RRect
