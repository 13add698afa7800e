package bidi

import (
	"strconv"
	"testing"
)

// charFromType maps a bidi class name to one representative code point of
// that class, the same table the dfrg/bidi conformance harness uses to
// turn a BidiTest.txt-style class sequence into real text.
//
// Ported from: dfrg/bidi (tests/conformance.rs, char_from_type).
func charFromType(ty string) rune {
	switch ty {
	case "ON":
		return '|'
	case "L":
		return 0x200E
	case "R":
		return 0x200F
	case "AN":
		return 0x661
	case "EN":
		return '0'
	case "AL":
		return 0x61C
	case "NSM":
		return 0x300
	case "CS":
		return ','
	case "ES":
		return '+'
	case "ET":
		return '$'
	case "BN":
		return 3
	case "S":
		return '\t'
	case "WS":
		return ' '
	case "B":
		return '\n'
	case "RLO":
		return 0x202E
	case "RLE":
		return 0x202B
	case "LRO":
		return 0x202D
	case "LRE":
		return 0x202A
	case "PDF":
		return 0x202C
	case "FSI":
		return 0x2068
	case "LRI":
		return 0x2066
	case "PDI":
		return 0x2069
	case "RLI":
		return 0x2067
	default:
		return 0
	}
}

func textFromTypes(types ...string) []rune {
	text := make([]rune, len(types))
	for i, ty := range types {
		text[i] = charFromType(ty)
	}
	return text
}

// conformanceCase mirrors one row of a BidiTest.txt/BidiCharacterTest.txt
// conformance harness: an input, the base level to resolve with
// (nil auto-detects), the expected per-position level (with "x" standing
// in for a position whose original class is removed by X9, matching the
// upstream format), and the expected visual reorder with those same
// positions dropped out.
type conformanceCase struct {
	name       string
	text       []rune
	base       *Level
	wantLevels []string
	wantOrder  []int
}

// runConformanceCase resolves a case's text and checks both the
// per-position level (against the "x"-for-ignored format) and the
// reorder, the same two assertions dfrg/bidi's TestState.run makes per
// line of the UCD conformance files.
//
// Ported from: dfrg/bidi (tests/conformance.rs, TestState::run).
func runConformanceCase(t *testing.T, tc conformanceCase) {
	t.Helper()
	resolved := ResolveLevels(tc.text, GranularityChar, tc.base)
	if len(resolved.Levels) != len(tc.wantLevels) {
		t.Fatalf("%s: levels length = %d, want %d", tc.name, len(resolved.Levels), len(tc.wantLevels))
	}
	for i, want := range tc.wantLevels {
		var got string
		if ClassForChar(tc.text[i]).IsIgnored() {
			got = "x"
		} else {
			got = strconv.Itoa(int(resolved.Levels[i]))
		}
		if got != want {
			t.Errorf("%s: level[%d] = %s, want %s (full: %v)", tc.name, i, got, want, resolved.Levels)
		}
	}

	order := ReorderLevels(resolved.Levels)
	var filtered []int
	for _, idx := range order {
		if !ClassForChar(tc.text[idx]).IsIgnored() {
			filtered = append(filtered, idx)
		}
	}
	if len(filtered) != len(tc.wantOrder) {
		t.Fatalf("%s: order = %v, want %v", tc.name, filtered, tc.wantOrder)
	}
	for i, want := range tc.wantOrder {
		if filtered[i] != want {
			t.Errorf("%s: order[%d] = %d, want %d (full: %v)", tc.name, i, filtered[i], want, filtered)
		}
	}
}

// TestConformanceRuleFamilies curates one hand-verified case per rule
// family (W1-W7, N0, N1-N2, BD13 isolate stitching, L1, and X9's ignored
// positions), in the style of a BidiTest.txt/BidiCharacterTest.txt row,
// since neither file is available locally to run wholesale.
func TestConformanceRuleFamilies(t *testing.T) {
	one := Level(1)
	zero := Level(0)

	cases := []conformanceCase{
		{
			// W1 (NSM takes the preceding resolved class) composed with
			// W3 (AL becomes R before W1 looks at it).
			name:       "W1 after W3-resolved AL",
			text:       textFromTypes("AL", "NSM"),
			wantLevels: []string{"1", "1"},
			wantOrder:  []int{1, 0},
		},
		{
			// W2: a European number following an Arabic letter becomes
			// an Arabic number.
			name:       "W2 EN after AL becomes AN",
			text:       textFromTypes("AL", "EN"),
			wantLevels: []string{"1", "2"},
			wantOrder:  []int{1, 0},
		},
		{
			// W4 (CS between two EN stays/merges to EN) composed with
			// W7 (EN after sos-L becomes L).
			name:       "W4 CS between numbers, then W7",
			text:       textFromTypes("EN", "CS", "EN"),
			wantLevels: []string{"0", "0", "0"},
			wantOrder:  []int{0, 1, 2},
		},
		{
			// W5: an ET run takes the direction of a following EN, and
			// with a forced RTL base the result stays EN rather than
			// being pulled to L by W7.
			name:       "W5 ET before EN, forced RTL base",
			text:       textFromTypes("ET", "EN"),
			base:       &one,
			wantLevels: []string{"2", "2"},
			wantOrder:  []int{0, 1},
		},
		{
			// W6: a lone ES with no adjacent EN becomes ON, then N1
			// resolves it with the surrounding L context.
			name:       "W6 ES with no adjacent EN",
			text:       textFromTypes("L", "ES", "L"),
			wantLevels: []string{"0", "0", "0"},
			wantOrder:  []int{0, 1, 2},
		},
		{
			// N0: a bracket pair whose content direction disagrees with
			// the embedding direction falls back to the preceding
			// context (L), even though the content itself is R.
			name:       "N0 bracket falls back to preceding L context",
			text:       []rune{'a', '(', 0x05D0, ')', 'a'},
			wantLevels: []string{"0", "0", "1", "0", "0"},
			wantOrder:  []int{0, 1, 2, 3, 4},
		},
		{
			// N1: neutrals between two strong runs of the same
			// direction take that direction.
			name:       "N1 matching surrounding strong runs",
			text:       textFromTypes("R", "ON", "ON", "R"),
			wantLevels: []string{"1", "1", "1", "1"},
			wantOrder:  []int{3, 2, 1, 0},
		},
		{
			// N2: neutrals between disagreeing strong runs fall back to
			// the (forced LTR) embedding direction instead.
			name:       "N2 disagreeing surrounding runs use embedding direction",
			text:       textFromTypes("R", "ON", "ON", "L"),
			base:       &zero,
			wantLevels: []string{"1", "0", "0", "0"},
			wantOrder:  []int{0, 1, 2, 3},
		},
		{
			// BD13: an RLI/PDI pair wrapping one RTL character inside an
			// LTR paragraph stitches the isolate initiator's run back
			// together with the PDI's run into one sequence, so the
			// isolate markers resolve as neutral L alongside the
			// surrounding text while the isolated content keeps its own
			// level.
			name:       "BD13 isolate stitching",
			text:       []rune{charFromType("L"), charFromType("RLI"), 0x05D0, charFromType("PDI"), charFromType("L")},
			wantLevels: []string{"0", "0", "1", "0", "0"},
			wantOrder:  []int{0, 1, 2, 3, 4},
		},
		{
			// X9: a boundary-neutral character is excluded from every
			// resolver pass, shown as "x" rather than a level, and
			// dropped from the reorder entirely.
			name:       "BN is ignored throughout",
			text:       textFromTypes("L", "BN", "R"),
			wantLevels: []string{"0", "x", "1"},
			wantOrder:  []int{0, 2},
		},
		{
			// L1: trailing whitespace following an unclosed RLE resets
			// to the base level, even though N1/N2 and I2 would
			// otherwise have carried it to the embedding's odd level;
			// the RLE itself is ignored throughout.
			name:       "L1 resets trailing whitespace under an unclosed RLE",
			text:       textFromTypes("RLE", "WS", "WS"),
			wantLevels: []string{"x", "0", "0"},
			wantOrder:  []int{1, 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runConformanceCase(t, tc)
		})
	}
}
