package bidi

import "unicode/utf8"

// Granularity selects whether a Resolved's positions are indices into a
// slice of runes (Char) or byte offsets into a UTF-8 string (Byte).
// Callers that only ever work with a decoded []rune paragraph can ignore
// this; it exists for the byte-oriented adapter API.
type Granularity uint8

const (
	// GranularityChar indexes by rune position.
	GranularityChar Granularity = iota
	// GranularityByte indexes by UTF-8 byte offset.
	GranularityByte
)

// Resolved is the output of a resolve call: one T (a Level, or a
// LevelRange once compressed) per position, at the recorded Granularity,
// alongside the paragraph embedding level that was used.
//
// Ported from: dfrg/bidi (src/lib.rs, Resolved<T>).
type Resolved[T any] struct {
	Granularity Granularity
	BaseLevel   Level
	Levels      []T
}

// ToRanges compresses a per-character Resolved[Level] into maximal runs
// of equal level, suitable for driving shaping or rendering without
// inspecting every character's level individually.
func (r *Resolved[T]) ToRanges() []LevelRange {
	levels, ok := any(r.Levels).([]Level)
	if !ok {
		return nil
	}
	var ranges []LevelRange
	n := len(levels)
	i := 0
	for i < n {
		lvl := levels[i]
		j := i + 1
		for j < n && levels[j] == lvl {
			j++
		}
		ranges = append(ranges, LevelRange{Level: lvl, Start: i, End: j})
		i = j
	}
	return ranges
}

// byteLens returns, for each rune in text, the number of UTF-8 bytes it
// occupies, reused as a scratch buffer by the granularity expansion below.
func byteLens(text []rune) []int {
	lens := make([]int, len(text))
	for i, r := range text {
		lens[i] = utf8.RuneLen(r)
	}
	return lens
}

// expandLevelsToBytes rewrites a char-granularity level slice into a
// byte-granularity one, repeating each character's level once per UTF-8
// byte it occupies.
//
// Ported from: dfrg/bidi (src/lib.rs, resolve_levels_into's Granularity::Byte
// arm: `for _ in 0..ch.len_utf8() { levels.push(*level) }`).
func expandLevelsToBytes(text []rune, charLevels []Level) []Level {
	lens := byteLens(text)
	total := 0
	for _, l := range lens {
		total += l
	}
	byteLevels := make([]Level, 0, total)
	for i, lvl := range charLevels {
		for n := 0; n < lens[i]; n++ {
			byteLevels = append(byteLevels, lvl)
		}
	}
	return byteLevels
}

// byteRangesFromCharLevels computes maximal equal-level runs directly in
// byte offsets, by walking the char-granularity levels once and advancing
// each character's own UTF-8 width rather than re-scanning an expanded
// byte-level slice.
//
// dfrg/bidi's own resolve_ranges_into builds its Byte-granularity ranges
// by zipping the already-byte-expanded level slice against text.chars()
// index-for-index; because a multi-byte character occupies more than one
// slot in that slice but only one slot in the char iterator, the two
// walks drift out of alignment after the first multi-byte character and
// can merge a following character into the wrong run. This computes
// byte offsets from the char-granularity levels directly instead, which
// keeps the two walks (levels, byte offset) in lockstep by construction.
func byteRangesFromCharLevels(text []rune, charLevels []Level) []LevelRange {
	lens := byteLens(text)
	var ranges []LevelRange
	n := len(charLevels)
	i := 0
	byteOffset := 0
	for i < n {
		lvl := charLevels[i]
		start := byteOffset
		j := i
		for j < n && charLevels[j] == lvl {
			byteOffset += lens[j]
			j++
		}
		ranges = append(ranges, LevelRange{Level: lvl, Start: start, End: byteOffset})
		i = j
	}
	return ranges
}

// ResolveLevelsInto resolves the embedding level of every character in
// text using the scratch buffers owned by state, appending the result
// into resolved at the requested granularity. baseLevel overrides
// paragraph-level detection (P2/P3) when non-nil; pass nil to
// auto-detect. Reusing a State and a Resolved across many calls avoids
// per-paragraph allocation.
//
// Ported from: dfrg/bidi (src/lib.rs, state::resolve_levels_into).
func ResolveLevelsInto(state *State, text []rune, granularity Granularity, baseLevel *Level, resolved *Resolved[Level]) {
	state.resolve(text, baseLevel, resolved)
	if granularity == GranularityByte {
		resolved.Levels = expandLevelsToBytes(text, resolved.Levels)
	}
	resolved.Granularity = granularity
}

// ResolveLevels is the allocating convenience form of ResolveLevelsInto:
// it creates a fresh State and Resolved for a single call. Prefer
// ResolveLevelsInto when resolving many paragraphs.
//
// Ported from: dfrg/bidi (src/lib.rs, resolve_levels).
func ResolveLevels(text []rune, granularity Granularity, baseLevel *Level) *Resolved[Level] {
	resolved := &Resolved[Level]{}
	ResolveLevelsInto(NewState(), text, granularity, baseLevel, resolved)
	return resolved
}

// ResolveRangesInto is ResolveLevelsInto followed by run compression: the
// result is one LevelRange per maximal run of constant level rather than
// one Level per character, with the range boundaries expressed at the
// requested granularity.
//
// Ported from: dfrg/bidi (src/lib.rs, state::resolve_ranges_into), with
// the byte-range computation corrected per byteRangesFromCharLevels.
func ResolveRangesInto(state *State, text []rune, granularity Granularity, baseLevel *Level, levels *Resolved[Level], resolved *Resolved[LevelRange]) {
	state.resolve(text, baseLevel, levels)
	resolved.Granularity = granularity
	resolved.BaseLevel = levels.BaseLevel
	switch granularity {
	case GranularityByte:
		resolved.Levels = byteRangesFromCharLevels(text, levels.Levels)
		levels.Levels = expandLevelsToBytes(text, levels.Levels)
		levels.Granularity = GranularityByte
	default:
		resolved.Levels = levels.ToRanges()
		levels.Granularity = GranularityChar
	}
}

// ResolveRanges is the allocating convenience form of ResolveRangesInto.
//
// Ported from: dfrg/bidi (src/lib.rs, resolve_ranges).
func ResolveRanges(text []rune, granularity Granularity, baseLevel *Level) *Resolved[LevelRange] {
	levels := &Resolved[Level]{}
	resolved := &Resolved[LevelRange]{}
	ResolveRangesInto(NewState(), text, granularity, baseLevel, levels, resolved)
	return resolved
}
