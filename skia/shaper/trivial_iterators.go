package shaper

import (
	"github.com/zodimo/go-bidi/skia/bidi"
	"github.com/zodimo/go-bidi/skia/interfaces"
)

// TrivialRunIterator is a base implementation for trivial iterators.
// It assumes a single run covering the entire text.
type TrivialRunIterator struct {
	textLength int
	atEnd      bool
}

// NewTrivialRunIterator creates a new TrivialRunIterator.
func NewTrivialRunIterator(textLength int) *TrivialRunIterator {
	return &TrivialRunIterator{
		textLength: textLength,
		atEnd:      textLength == 0,
	}
}

// Consume consumes the single run; the iterator is then at its end.
func (t *TrivialRunIterator) Consume() {
	t.atEnd = true
}

// EndOfCurrentRun returns the end index of the current run.
func (t *TrivialRunIterator) EndOfCurrentRun() int {
	return t.textLength
}

// AtEnd returns true if the iterator is at the end of the text.
func (t *TrivialRunIterator) AtEnd() bool {
	return t.atEnd
}

// TrivialFontRunIterator is a trivial implementation of FontRunIterator.
type TrivialFontRunIterator struct {
	*TrivialRunIterator
	font interfaces.SkFont
}

// NewTrivialFontRunIterator creates a new TrivialFontRunIterator.
func NewTrivialFontRunIterator(font interfaces.SkFont, textLength int) *TrivialFontRunIterator {
	return &TrivialFontRunIterator{
		TrivialRunIterator: NewTrivialRunIterator(textLength),
		font:               font,
	}
}

// CurrentFont returns the font for the current run.
func (t *TrivialFontRunIterator) CurrentFont() interfaces.SkFont {
	return t.font
}

// TrivialBiDiRunIterator is a trivial implementation of BiDiRunIterator.
type TrivialBiDiRunIterator struct {
	*TrivialRunIterator
	level uint8
}

// NewTrivialBiDiRunIterator creates a new TrivialBiDiRunIterator.
func NewTrivialBiDiRunIterator(bidiLevel uint8, textLength int) *TrivialBiDiRunIterator {
	return &TrivialBiDiRunIterator{
		TrivialRunIterator: NewTrivialRunIterator(textLength),
		level:              bidiLevel,
	}
}

// CurrentLevel returns the bidi level for the current run.
func (t *TrivialBiDiRunIterator) CurrentLevel() uint8 {
	return t.level
}

// ResolvedBiDiRunIterator is a BiDiRunIterator backed by the real
// per-run embedding levels produced by the bidi package, rather than a
// single level for the whole text.
type ResolvedBiDiRunIterator struct {
	ranges []bidi.LevelRange
	pos    int
}

// NewResolvedBiDiRunIterator resolves text's embedding levels (with
// baseLevel, or auto-detection if nil) and returns an iterator over the
// resulting runs.
func NewResolvedBiDiRunIterator(text []rune, baseLevel *bidi.Level) *ResolvedBiDiRunIterator {
	resolved := bidi.ResolveRanges(text, bidi.GranularityChar, baseLevel)
	return &ResolvedBiDiRunIterator{ranges: resolved.Levels}
}

// NewResolvedBiDiRunIteratorFromRanges builds an iterator directly from
// already-resolved level ranges, for callers (such as a paragraph's font
// fallback path) that sliced a larger resolution rather than running a
// fresh one over a sub-range out of context.
func NewResolvedBiDiRunIteratorFromRanges(ranges []bidi.LevelRange) *ResolvedBiDiRunIterator {
	return &ResolvedBiDiRunIterator{ranges: ranges}
}

// Consume advances past the current run.
func (r *ResolvedBiDiRunIterator) Consume() {
	if r.pos < len(r.ranges) {
		r.pos++
	}
}

// EndOfCurrentRun returns the end index (in runes) of the current run.
func (r *ResolvedBiDiRunIterator) EndOfCurrentRun() int {
	if r.pos >= len(r.ranges) {
		if len(r.ranges) == 0 {
			return 0
		}
		return r.ranges[len(r.ranges)-1].End
	}
	return r.ranges[r.pos].End
}

// AtEnd reports whether every run has been consumed.
func (r *ResolvedBiDiRunIterator) AtEnd() bool {
	return r.pos >= len(r.ranges)
}

// CurrentLevel returns the embedding level of the current run.
func (r *ResolvedBiDiRunIterator) CurrentLevel() uint8 {
	if r.pos >= len(r.ranges) {
		return 0
	}
	return r.ranges[r.pos].Level
}

// TrivialScriptRunIterator is a trivial implementation of ScriptRunIterator.
type TrivialScriptRunIterator struct {
	*TrivialRunIterator
	script uint32
}

// NewTrivialScriptRunIterator creates a new TrivialScriptRunIterator.
func NewTrivialScriptRunIterator(script uint32, textLength int) *TrivialScriptRunIterator {
	return &TrivialScriptRunIterator{
		TrivialRunIterator: NewTrivialRunIterator(textLength),
		script:             script,
	}
}

// CurrentScript returns the script code for the current run.
func (t *TrivialScriptRunIterator) CurrentScript() uint32 {
	return t.script
}

// TrivialLanguageRunIterator is a trivial implementation of LanguageRunIterator.
type TrivialLanguageRunIterator struct {
	*TrivialRunIterator
	language string
}

// NewTrivialLanguageRunIterator creates a new TrivialLanguageRunIterator.
func NewTrivialLanguageRunIterator(language string, textLength int) *TrivialLanguageRunIterator {
	return &TrivialLanguageRunIterator{
		TrivialRunIterator: NewTrivialRunIterator(textLength),
		language:           language,
	}
}

// CurrentLanguage returns the language string for the current run.
func (t *TrivialLanguageRunIterator) CurrentLanguage() string {
	return t.language
}
