package bidi

import (
	"testing"
	"unicode/utf8"
)

func levelOf(r *Resolved[Level]) []Level { return r.Levels }

// Scenarios grounded on the six literal input/output examples a correct
// implementation must reproduce: plain LTR, plain RTL, mixed LTR+RTL,
// RTL next to a digit run, a forced-base-level bracket pair, and an
// isolate. The bracket pair needs a forced base level and is checked
// separately in TestResolveLevelsForcedBaseBracket.
func TestResolveLevelsScenarios(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		base      *Level
		wantBase  Level
		wantLevel []Level
	}{
		{
			name:      "plain ascii",
			text:      "hello",
			wantBase:  0,
			wantLevel: []Level{0, 0, 0, 0, 0},
		},
		{
			name:      "three hebrew letters",
			text:      "אבג",
			wantBase:  1,
			wantLevel: []Level{1, 1, 1},
		},
		{
			name:      "mixed ltr then hebrew",
			text:      "car is סעף",
			wantBase:  0,
			wantLevel: []Level{0, 0, 0, 0, 0, 0, 0, 1, 1, 1},
		},
		{
			name:      "hebrew space digits",
			text:      "אב 12",
			wantBase:  1,
			wantLevel: []Level{1, 1, 1, 2, 2},
		},
		{
			name:      "rli isolate",
			text:      "⁧abc⁩",
			wantBase:  0,
			wantLevel: []Level{0, 2, 2, 2, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveLevels([]rune(tt.text), GranularityChar, tt.base)
			if resolved.BaseLevel != tt.wantBase {
				t.Errorf("base level = %d, want %d", resolved.BaseLevel, tt.wantBase)
			}
			got := levelOf(resolved)
			if len(got) != len(tt.wantLevel) {
				t.Fatalf("levels length = %d, want %d (%v)", len(got), len(tt.wantLevel), got)
			}
			for i := range got {
				if got[i] != tt.wantLevel[i] {
					t.Errorf("level[%d] = %d, want %d (full: %v)", i, got[i], tt.wantLevel[i], got)
				}
			}
		})
	}
}

func TestResolveLevelsForcedBaseBracket(t *testing.T) {
	base := Level(1)
	resolved := ResolveLevels([]rune("(a)"), GranularityChar, &base)
	want := []Level{1, 2, 1}
	for i, lvl := range want {
		if resolved.Levels[i] != lvl {
			t.Errorf("level[%d] = %d, want %d (full: %v)", i, resolved.Levels[i], lvl, resolved.Levels)
		}
	}
}

func TestReorderScenarios(t *testing.T) {
	tests := []struct {
		name string
		text string
		base *Level
		want []int
	}{
		{"identity at level 0", "hello", nil, []int{0, 1, 2, 3, 4}},
		{"full reversal at level 1", "אבג", nil, []int{2, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveLevels([]rune(tt.text), GranularityChar, tt.base)
			order := ReorderLevels(resolved.Levels)
			if len(order) != len(tt.want) {
				t.Fatalf("order length = %d, want %d", len(order), len(tt.want))
			}
			for i := range order {
				if order[i] != tt.want[i] {
					t.Errorf("order[%d] = %d, want %d (full: %v)", i, order[i], tt.want[i], order)
				}
			}
		})
	}
}

func TestExplicitEmbeddingOverride(t *testing.T) {
	// RLO forces everything until PDF to resolve as R, overriding the
	// working class of an otherwise-L character (X6).
	text := "a‮b‬c"
	resolved := ResolveLevels([]rune(text), GranularityChar, nil)
	// a: level 0; RLO pushes level 1; b: overridden to R at level 1;
	// PDF pops back; c: level 0.
	want := []Level{0, 1, 0}
	got := []Level{resolved.Levels[0], resolved.Levels[2], resolved.Levels[4]}
	for i, lvl := range want {
		if got[i] != lvl {
			t.Errorf("level[%d] = %d, want %d (full: %v)", i, got[i], lvl, resolved.Levels)
		}
	}
}

func TestExplicitEmbeddingOverflow(t *testing.T) {
	// Pushing more than maxDepth levels of embeddings must not panic or
	// corrupt the stack; excess embeddings are simply ignored (X7).
	text := make([]rune, 0, 300)
	for i := 0; i < 130; i++ {
		text = append(text, '‪') // LRE
	}
	text = append(text, 'a')
	for i := 0; i < 130; i++ {
		text = append(text, '‬') // PDF
	}
	resolved := ResolveLevels(text, GranularityChar, nil)
	if len(resolved.Levels) != len(text) {
		t.Fatalf("levels length = %d, want %d", len(resolved.Levels), len(text))
	}
	for _, lvl := range resolved.Levels {
		if lvl > maxDepth {
			t.Errorf("level %d exceeds maxDepth %d", lvl, maxDepth)
		}
	}
}

func TestLineResetTrailingSpace(t *testing.T) {
	// L1: trailing whitespace resets to the base level even when it sits
	// inside an unclosed RLE block that would otherwise resolve it to
	// level 1 via N1/N2 and I2.
	text := []rune{0x202B, ' ', ' '} // RLE, space, space
	resolved := ResolveLevels(text, GranularityChar, nil)
	if resolved.Levels[1] != 0 || resolved.Levels[2] != 0 {
		t.Errorf("trailing whitespace levels = %v, want both 0", resolved.Levels[1:])
	}
}

func TestStateReuseIsIdempotent(t *testing.T) {
	state := NewState()
	var a, b Resolved[Level]
	text := []rune("car is סעף")
	ResolveLevelsInto(state, text, GranularityChar, nil, &a)
	ResolveLevelsInto(state, text, GranularityChar, nil, &b)
	if len(a.Levels) != len(b.Levels) {
		t.Fatalf("length mismatch across reuse: %d vs %d", len(a.Levels), len(b.Levels))
	}
	for i := range a.Levels {
		if a.Levels[i] != b.Levels[i] {
			t.Errorf("level[%d] differs across reuse: %d vs %d", i, a.Levels[i], b.Levels[i])
		}
	}
}

func TestResolveRangesCompression(t *testing.T) {
	resolved := ResolveRanges([]rune("car is סעף"), GranularityChar, nil)
	want := []LevelRange{{Level: 0, Start: 0, End: 7}, {Level: 1, Start: 7, End: 10}}
	if len(resolved.Levels) != len(want) {
		t.Fatalf("ranges = %v, want %v", resolved.Levels, want)
	}
	for i, r := range want {
		if resolved.Levels[i] != r {
			t.Errorf("range[%d] = %+v, want %+v", i, resolved.Levels[i], r)
		}
	}
}

func TestResolveLevelsByteGranularity(t *testing.T) {
	// Each Hebrew letter here is a 2-byte UTF-8 sequence; byte granularity
	// must repeat its level once per byte, not once per rune.
	text := []rune("aס")
	resolved := ResolveLevels(text, GranularityByte, nil)
	if resolved.Granularity != GranularityByte {
		t.Fatalf("Granularity = %v, want GranularityByte", resolved.Granularity)
	}
	want := []Level{0, 1, 1}
	if len(resolved.Levels) != len(want) {
		t.Fatalf("levels = %v, want %v", resolved.Levels, want)
	}
	for i, lvl := range want {
		if resolved.Levels[i] != lvl {
			t.Errorf("level[%d] = %d, want %d (full: %v)", i, resolved.Levels[i], lvl, resolved.Levels)
		}
	}
}

func TestResolveRangesByteGranularity(t *testing.T) {
	// "car is " is 7 one-byte characters; סעף is three 2-byte characters,
	// so the byte range must end at 7+6=13, not at the char count 10.
	resolved := ResolveRanges([]rune("car is סעף"), GranularityByte, nil)
	want := []LevelRange{{Level: 0, Start: 0, End: 7}, {Level: 1, Start: 7, End: 13}}
	if len(resolved.Levels) != len(want) {
		t.Fatalf("ranges = %v, want %v", resolved.Levels, want)
	}
	for i, r := range want {
		if resolved.Levels[i] != r {
			t.Errorf("range[%d] = %+v, want %+v", i, resolved.Levels[i], r)
		}
	}
}

func TestResolveRangesByteGranularityMultiByteMidString(t *testing.T) {
	// A 3-byte character ('€', U+20AC) sits between two 1-byte ones, and
	// the level changes at the 2-byte Hebrew letter that follows; byte-range
	// offsets must track actual UTF-8 width rather than a per-rune index, or
	// the level-0 range would end at 3 instead of at byte 5.
	text := []rune{'a', 0x20AC, 'a', 0x05D0} // a, €, a, hebrew alef
	resolved := ResolveRanges(text, GranularityByte, nil)
	want := []LevelRange{{Level: 0, Start: 0, End: 5}, {Level: 1, Start: 5, End: 7}}
	if len(resolved.Levels) != len(want) {
		t.Fatalf("ranges = %v, want %v", resolved.Levels, want)
	}
	for i, r := range want {
		if resolved.Levels[i] != r {
			t.Errorf("range[%d] = %+v, want %+v", i, resolved.Levels[i], r)
		}
	}
}

func TestGranularityConsistency(t *testing.T) {
	// The byte-granularity level slice, once collapsed back to one value
	// per character, must equal the char-granularity level slice: both
	// granularities describe the same resolution, just indexed
	// differently.
	text := []rune("car is סעף 123")
	charResolved := ResolveLevels(text, GranularityChar, nil)
	byteResolved := ResolveLevels(text, GranularityByte, nil)

	pos := 0
	for i, r := range text {
		n := utf8.RuneLen(r)
		for b := 0; b < n; b++ {
			if byteResolved.Levels[pos+b] != charResolved.Levels[i] {
				t.Fatalf("byte level at offset %d = %d, want %d (char %d)", pos+b, byteResolved.Levels[pos+b], charResolved.Levels[i], i)
			}
		}
		pos += n
	}
	if pos != len(byteResolved.Levels) {
		t.Fatalf("consumed %d bytes, byte-granularity levels has %d", pos, len(byteResolved.Levels))
	}
}
