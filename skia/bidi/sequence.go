package bidi

// resolveSequence runs W1-W7, N0, N1-N2, and I1-I2 over a single
// isolating run sequence (already materialized into s.seqTypes /
// s.seqIndices by resolve), writing final embedding levels back through
// s.seqIndices into resolved.Levels.
//
// Ported from: dfrg/bidi (src/lib.rs, State::resolve_sequence).
func (s *State) resolveSequence(level Level, sos, eos Type, resolved *Resolved[Level]) {
	n := len(s.seqIndices)
	if n == 0 {
		return
	}
	types := s.seqTypes

	const w1Mask = uint32(1)<<LRI | uint32(1)<<RLI | uint32(1)<<FSI | uint32(1)<<PDI
	const w2Mask = uint32(1)<<L | uint32(1)<<R | uint32(1)<<AL
	const w4Mask = uint32(1)<<ES | uint32(1)<<CS

	// W1-W4, combined into a single left-to-right pass as in the source
	// algorithm: each rule only needs the immediately preceding (and, for
	// W4, immediately following) resolved class.
	prev := sos
	prevStrong := prev
	for i := 0; i < n; i++ {
		t := types[i]
		mask := t.Mask()
		if t == NSM {
			types[i] = prev
			continue
		}
		if mask&w1Mask != 0 {
			prev = ON
			continue
		}
		if t == EN {
			if prevStrong == AL {
				t = AN
				types[i] = t
			}
		} else if mask&w2Mask != 0 {
			prevStrong = t
			if t == AL {
				t = R
				types[i] = t
			}
		} else if mask&w4Mask != 0 && i < n-1 {
			next := types[i+1]
			if next == EN && prevStrong == AL {
				next = AN
			}
			if prev == EN && next == EN {
				t = EN
				types[i] = t
			} else if t == CS && prev == AN && next == AN {
				t = AN
				types[i] = t
			}
		}
		prev = t
	}

	// W5: a run of ET adjacent to EN (on either side) becomes EN.
	for i := 0; i < n; {
		if types[i] == ET {
			limit := findLimit(types, i, ET)
			t := sos
			if i != 0 {
				t = types[i-1]
			}
			if t != EN {
				if limit == n {
					t = eos
				} else {
					t = types[limit]
				}
			}
			if t == EN {
				for k := i; k < limit; k++ {
					types[k] = EN
				}
			}
			i = limit
		}
		i++
	}

	// W6/W7: remaining separators and terminators become ON; EN following
	// an L (ignoring anything already resolved since) becomes L.
	const w6Mask = uint32(1)<<ES | uint32(1)<<ET | uint32(1)<<CS
	prevStrong = sos
	for i := 0; i < n; i++ {
		t := types[i]
		switch {
		case t.Mask()&w6Mask != 0:
			types[i] = ON
		case t == EN:
			if prevStrong == L {
				types[i] = L
			}
		case t == L || t == R:
			prevStrong = t
		}
	}

	s.resolveBrackets(types, level, sos)

	// N1/N2: maximal runs of neutrals/isolate-formatters take the
	// surrounding strong direction if it agrees on both sides, else the
	// embedding direction.
	for i := 0; i < n; {
		if types[i].Mask()&neutralOrIsoMask != 0 {
			offset := i
			limit := findLimitByMask(types, offset, neutralOrIsoMask)
			var leading, trailing Type
			if offset == 0 {
				leading = sos
			} else {
				leading = types[offset-1]
				if leading == AN || leading == EN {
					leading = R
				}
			}
			if limit == n {
				trailing = eos
			} else {
				trailing = types[limit]
				if trailing == AN || trailing == EN {
					trailing = R
				}
			}
			var resolvedDir Type
			if leading == trailing {
				resolvedDir = leading
			} else if level&1 != 0 {
				resolvedDir = R
			} else {
				resolvedDir = L
			}
			for k := offset; k < limit; k++ {
				types[k] = resolvedDir
			}
			i = limit - 1
		}
		i++
	}

	// I1/I2: implicit levels from the final class and the run's level
	// parity.
	if level&1 == 0 {
		for k := 0; k < n; k++ {
			idx := s.seqIndices[k]
			switch types[k] {
			case R:
				resolved.Levels[idx] = level + 1
			case L:
				resolved.Levels[idx] = level
			default:
				resolved.Levels[idx] = level + 2
			}
		}
	} else {
		for k := 0; k < n; k++ {
			idx := s.seqIndices[k]
			if types[k] == R {
				resolved.Levels[idx] = level
			} else {
				resolved.Levels[idx] = level + 1
			}
		}
	}
}

func findLimit(types []Type, offset int, ty Type) int {
	l := offset
	for l < len(types) && types[l] == ty {
		l++
	}
	return l
}

func findLimitByMask(types []Type, offset int, mask uint32) int {
	l := offset
	for l < len(types) && types[l].Mask()&mask != 0 {
		l++
	}
	return l
}

// resolveBrackets implements N0: bracket pairs whose contents (or,
// failing that, whose preceding context) carry a consistent strong
// direction take that direction; NSM runs immediately following a
// resolved bracket inherit it too.
//
// Ported from: dfrg/bidi (src/lib.rs, State::resolve_sequence, N0 section).
func (s *State) resolveBrackets(types []Type, level Level, sos Type) {
	if len(s.brackets) == 0 {
		return
	}
	n := len(types)
	s.bracketPairs = s.bracketPairs[:0]
	var stack bracketStack
	for i := 0; i < n; i++ {
		if types[i] != ON {
			continue
		}
		index := s.seqIndices[i]
		bi, ok := findBracket(s.brackets, index)
		if !ok {
			continue
		}
		br := s.brackets[bi]
		switch br.bracket.Kind {
		case BracketOpen:
			if stack.depth == maxBracketDepth {
				i = n // abort remaining bracket scanning for this sequence
				break
			}
			stack.push(i, br.bracket.Mate)
		case BracketClose:
			if openPos, ok := stack.findAndPop(br.ch); ok {
				s.bracketPairs = append(s.bracketPairs, bracketPairRef{open: openPos, close: i})
			}
		}
	}
	if len(s.bracketPairs) == 0 {
		return
	}

	embedDir := L
	if level&1 != 0 {
		embedDir = R
	}
	sortBracketPairs(s.bracketPairs)

	for _, pair := range s.bracketPairs {
		pairDir := ON
		for k := pair.open + 1; k < pair.close; k++ {
			dir := strongDirOf(types[k])
			if dir == ON {
				continue
			}
			pairDir = dir
			if dir == embedDir {
				break
			}
		}
		if pairDir == ON {
			continue
		}
		if pairDir != embedDir {
			pairDir = sos
			for k := pair.open - 1; k >= 0; k-- {
				if dir := strongDirOf(types[k]); dir != ON {
					pairDir = dir
					break
				}
			}
			if pairDir == embedDir || pairDir == ON {
				pairDir = embedDir
			}
		}

		types[pair.open] = pairDir
		types[pair.close] = pairDir
		for k := pair.open + 1; k < n; k++ {
			if s.initialClasses[s.seqIndices[k]] != NSM {
				break
			}
			types[k] = pairDir
		}
		for k := pair.close + 1; k < n; k++ {
			if s.initialClasses[s.seqIndices[k]] != NSM {
				break
			}
			types[k] = pairDir
		}
	}
}

func strongDirOf(t Type) Type {
	switch t {
	case EN, AN, AL, R:
		return R
	case L:
		return L
	default:
		return ON
	}
}

func findBracket(brackets []bracketRef, index int) (int, bool) {
	lo, hi := 0, len(brackets)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case brackets[mid].index < index:
			lo = mid + 1
		case brackets[mid].index > index:
			hi = mid
		default:
			return mid, true
		}
	}
	return 0, false
}

// sortBracketPairs orders pairs by opening position; N runs small enough
// (bounded by maxBracketDepth) that insertion sort avoids pulling in
// "sort" for a handful of elements.
func sortBracketPairs(pairs []bracketPairRef) {
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && pairs[j-1].open > pairs[j].open; j-- {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
		}
	}
}
