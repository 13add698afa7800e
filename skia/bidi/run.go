package bidi

// run is a maximal contiguous index range [start, end) at a single
// embedding level (BD7), extended with the sos/eos synthetic boundary
// classes and BD13 isolating-run-sequence linkage.
//
// Ported from: dfrg/bidi (src/lib.rs, Run).
type run struct {
	level            Level
	start, end       int
	sos, eos         Type
	startsWithPDI    bool
	endsWithIsolate  bool
	inSequence       bool
	next             int // index into State.runs, or -1
}

const noNextRun = -1

func newRun(level Level, start, end int) run {
	return run{level: level, start: start, end: end, sos: ON, eos: ON, next: noNextRun}
}
