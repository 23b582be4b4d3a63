package align

import "strings"

// Align — Smith–Waterman local alignment with affine gap penalties.
//
// Description:
//
//	Align finds the best-scoring local alignment between two nucleotide
//	sequences, charging GapOpen once per gap run and GapExt for every
//	gap position (the opening one included).
//
// Algorithm Outline:
//  1. Let n = len(seq1), m = len(seq2). Allocate (n+1)×(m+1) grids
//     H, E, F plus a traceback grid.
//  2. Initialize: H row/col 0 = 0; E, F row/col 0 = -Inf.
//  3. Fill row-major (i outer, j inner), tracking the first cell to
//     attain the global maximum under strict >.
//  4. Walk the traceback grid backward from the best cell to a STOP
//     cell or the border, collecting aligned symbol pairs.
//  5. Reverse the collected pairs and derive identity, gap and
//     mismatch counts plus 1-indexed span coordinates.
//
// Inputs are uppercased before scoring; symbol comparison is literal,
// so IUPAC ambiguity codes match only themselves. A nil opts uses
// DefaultOptions.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
//
// Errors:
//   - ErrEmptySequence — if either input is empty. No partial result
//     is ever produced.
//
// Example:
//
//	res, err := align.Align("ACGTTTACGT", "ACGTACGT", nil)
func Align(seq1, seq2 string, opts *Options) (Result, error) {
	if len(seq1) == 0 || len(seq2) == 0 {
		return Result{}, ErrEmptySequence
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	s1 := strings.ToUpper(seq1)
	s2 := strings.ToUpper(seq2)

	d := newDPState(len(s1), len(s2))
	d.fill(s1, s2, o)

	aligned1, aligned2, termI, termJ := d.traceback(s1, s2)

	return summarize(aligned1, aligned2, d.bestScore, termI, termJ, d.bestI, d.bestJ), nil
}
