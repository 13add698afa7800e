package bidi

// defaultLevel implements rule P2/P3: the paragraph embedding level is 0
// unless the first strong character outside any isolate is R or AL, in
// which case it is 1. A paragraph with no decisive strong character
// defaults to 0.
//
// Ported from: dfrg/bidi (src/lib.rs, State::default_level).
func defaultLevel(types []Type) Level {
	isolates := 0
	for _, t := range types {
		switch t {
		case RLI, LRI, FSI:
			isolates++
		case PDI:
			if isolates > 0 {
				isolates--
			}
		case L, R, AL:
			if isolates == 0 {
				if t == L {
					return 0
				}
				return 1
			}
		}
	}
	return 0
}

// defaultLevelUntilPDI is the same walk as defaultLevel, but starting just
// past an FSI and stopping at its matching PDI; used by X5c to decide
// whether an FSI behaves as RLI or LRI.
//
// Ported from: dfrg/bidi (src/lib.rs, State::default_level_until_pdi).
func defaultLevelUntilPDI(types []Type) Level {
	isolates := 0
	for _, t := range types {
		switch t {
		case RLI, LRI, FSI:
			isolates++
		case PDI:
			if isolates > 0 {
				isolates--
			} else {
				return 0
			}
		case L, R, AL:
			if isolates == 0 {
				if t == L {
					return 0
				}
				return 1
			}
		}
	}
	return 0
}
