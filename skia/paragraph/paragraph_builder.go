package paragraph

// ParagraphBuilder is the entry point for building a Paragraph.
// It follows a builder pattern to construct a paragraph with multiple styles.
//
// Ported from: skia-source/modules/skparagraph/include/ParagraphBuilder.h
type ParagraphBuilder interface {
	// PushStyle pushes a new text style onto the style stack.
	PushStyle(style *TextStyle)

	// Pop pops the current text style from the style stack.
	Pop()

	// PeekStyle returns the current text style from the top of the stack.
	PeekStyle() TextStyle

	// AddText adds text to the builder.
	AddText(text string)

	// AddTextBytes adds text bytes to the builder.
	AddTextBytes(text []byte)

	// AddPlaceholder adds a placeholder to the builder.
	AddPlaceholder(style PlaceholderStyle)

	// Build constructs and returns the Paragraph.
	Build() Paragraph

	// Reset resets the builder to its initial state.
	Reset()

	// GetText returns the current text accumulated in the builder.
	GetText() string

	// GetParagraphStyle returns the paragraph style used by the builder.
	GetParagraphStyle() ParagraphStyle
}

// MakeParagraphBuilder creates a new ParagraphBuilder with the given style and font collection.
func MakeParagraphBuilder(style ParagraphStyle, fontCollection *FontCollection) ParagraphBuilder {
	return &paragraphBuilderImpl{
		paragraphStyle: style,
		fontCollection: fontCollection,
		styleStack:     []TextStyle{style.DefaultTextStyle},
	}
}

// paragraphBuilderImpl is the default implementation of ParagraphBuilder.
type paragraphBuilderImpl struct {
	paragraphStyle ParagraphStyle
	fontCollection *FontCollection
	styleStack     []TextStyle
	text           string
	placeholders   []PlaceholderStyle // Simplified storage
}

// PushStyle pushes a new text style onto the style stack.
func (pb *paragraphBuilderImpl) PushStyle(style *TextStyle) {
	if style != nil {
		pb.styleStack = append(pb.styleStack, *style)
	}
}

// Pop pops the current text style from the style stack.
func (pb *paragraphBuilderImpl) Pop() {
	if len(pb.styleStack) > 1 {
		pb.styleStack = pb.styleStack[:len(pb.styleStack)-1]
	}
}

// PeekStyle returns the current text style from the top of the stack.
func (pb *paragraphBuilderImpl) PeekStyle() TextStyle {
	if len(pb.styleStack) > 0 {
		return pb.styleStack[len(pb.styleStack)-1]
	}
	return pb.paragraphStyle.DefaultTextStyle
}

// AddText adds text to the builder.
func (pb *paragraphBuilderImpl) AddText(text string) {
	pb.text += text
}

// AddTextBytes adds text bytes to the builder.
func (pb *paragraphBuilderImpl) AddTextBytes(text []byte) {
	pb.text += string(text)
}

// AddPlaceholder records the placeholder style and appends the object
// replacement character U+FFFC to the text in its place.
func (pb *paragraphBuilderImpl) AddPlaceholder(style PlaceholderStyle) {
	pb.placeholders = append(pb.placeholders, style)
	pb.text += string(rune(0xFFFC))
}

// Build constructs and returns the Paragraph.
func (pb *paragraphBuilderImpl) Build() Paragraph {
	// One block covers the whole text with the paragraph's default text
	// style; styles pushed with PushStyle are not applied.
	blocks := []Block{
		{
			Range: NewTextRange(0, len(pb.text)),
			Style: pb.paragraphStyle.DefaultTextStyle,
		},
	}

	// Create the paragraph implementation. The recorded placeholder styles
	// are not passed on; NewParagraphImpl adds its default placeholder.
	return NewParagraphImpl(
		pb.text,
		pb.paragraphStyle,
		blocks,
		nil, // recorded placeholder styles are not passed on
		pb.fontCollection,
		nil, // Unicode interface can be nil for basic usage
	)
}

// Reset resets the builder to its initial state.
func (pb *paragraphBuilderImpl) Reset() {
	pb.styleStack = []TextStyle{pb.paragraphStyle.DefaultTextStyle}
	pb.text = ""
	pb.placeholders = nil
}

// GetText returns the current text accumulated in the builder.
func (pb *paragraphBuilderImpl) GetText() string {
	return pb.text
}

// GetParagraphStyle returns the paragraph style used by the builder.
func (pb *paragraphBuilderImpl) GetParagraphStyle() ParagraphStyle {
	return pb.paragraphStyle
}
