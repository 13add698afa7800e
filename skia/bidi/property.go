package bidi

// ClassForChar returns the bidirectional class of ch as defined by the
// Unicode Character Database. Code points outside every tabulated range
// default to L, matching the UBA's "unassigned is left-to-right" rule for
// the bulk of unassigned planes.
//
// Ported from: dfrg/bidi (src/data.rs, lookup_bidi_class).
func ClassForChar(ch rune) Type {
	cp := uint32(ch)
	lo, hi := 0, len(bidiClassRanges)
	for lo < hi {
		mid := (lo + hi) / 2
		r := bidiClassRanges[mid]
		switch {
		case cp < r.Lo:
			hi = mid
		case cp >= r.Hi:
			lo = mid + 1
		default:
			return bidiClassValues[mid]
		}
	}
	return L
}

// BracketKind classifies a character as a bracket opener, closer, or
// neither, per BD14/BD15.
type BracketKind uint8

const (
	// BracketNone means ch is not a paired bracket character.
	BracketNone BracketKind = iota
	// BracketOpen means ch opens a bracket pair.
	BracketOpen
	// BracketClose means ch closes a bracket pair.
	BracketClose
)

// Bracket describes a bracket character: its kind and its mate (the
// closing character for an opener, the opening character for a closer).
type Bracket struct {
	Kind BracketKind
	Mate rune
}

// BracketForChar classifies ch against the Unicode bidi bracket-pair
// table. U+2329/U+232A (ANGLE BRACKET) and U+3008/U+3009 (CJK ANGLE
// BRACKET) are canonical equivalents of each other, per BD16.
//
// Ported from: dfrg/bidi (src/data.rs, BracketType::from_char).
func BracketForChar(ch rune) Bracket {
	if closer, ok := closingBracket(ch); ok {
		return Bracket{Kind: BracketOpen, Mate: closer}
	}
	if opener, ok := openingBracket(ch); ok {
		return Bracket{Kind: BracketClose, Mate: opener}
	}
	return Bracket{Kind: BracketNone}
}

func closingBracket(open rune) (rune, bool) {
	cp := uint32(open)
	lo, hi := 0, len(bracketPairs)
	for lo < hi {
		mid := (lo + hi) / 2
		if bracketPairs[mid][0] < cp {
			lo = mid + 1
		} else if bracketPairs[mid][0] > cp {
			hi = mid
		} else {
			return rune(bracketPairs[mid][1]), true
		}
	}
	return 0, false
}

// bracketPairsByCloser is bracketPairs sorted by closing codepoint, built
// once at init so openingBracket can binary search instead of scanning;
// the source table is sorted by opener, which is not monotonic in closer.
var bracketPairsByCloser = func() [][2]uint32 {
	sorted := append([][2]uint32(nil), bracketPairs[:]...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1][1] > sorted[j][1]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return sorted
}()

func openingBracket(close rune) (rune, bool) {
	cp := uint32(close)
	lo, hi := 0, len(bracketPairsByCloser)
	for lo < hi {
		mid := (lo + hi) / 2
		if bracketPairsByCloser[mid][1] < cp {
			lo = mid + 1
		} else if bracketPairsByCloser[mid][1] > cp {
			hi = mid
		} else {
			return rune(bracketPairsByCloser[mid][0]), true
		}
	}
	return 0, false
}

// Canonical bracket equivalence (BD16): U+232A <-> U+3009.
const (
	angleBracketClose    = '\u232A'
	cjkAngleBracketClose = '\u3009'
)

// bracketsEquivalent reports whether two closing-bracket characters name
// the same bracket under BD16's canonical equivalence.
func bracketsEquivalent(a, b rune) bool {
	if a == b {
		return true
	}
	return (a == angleBracketClose && b == cjkAngleBracketClose) ||
		(a == cjkAngleBracketClose && b == angleBracketClose)
}
