// Package align computes optimal local alignments between nucleotide
// sequences using the Smith–Waterman algorithm with affine gap penalties.
//
// 🚀 What is local alignment?
//
//	Local alignment finds the best-scoring matching of a contiguous
//	substring of each input, letting the aligned region start and end
//	anywhere.  It's the workhorse behind:
//	  • Homology search between DNA fragments
//	  • Primer / probe placement
//	  • Read-to-reference matching
//	  • Conserved-motif discovery
//
// ✨ Key features:
//   - affine gaps: opening a gap costs more than extending it
//   - three-matrix recurrence (H, E, F) — exact, no heuristics
//   - deterministic tie-breaks: STOP > diagonal > up > left
//   - full statistics: identity, gaps, mismatches, 1-indexed spans
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	opts := align.DefaultOptions() // match=5, mismatch=-4, open=-12, ext=-2
//	res, err := align.Align("ACACACTA", "AGCACACA", &opts)
//	if err != nil {
//	  // handle ErrEmptySequence
//	}
//	fmt.Println(res.AlignedSeq1, res.AlignedSeq2, res.Score)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (three score grids plus the traceback grid)
//
// Scoring parameters are taken as-is: the package never clamps or
// validates ranges, so degenerate settings (positive gap extension,
// match below mismatch) run exactly as specified.  IUPAC ambiguity
// codes compare by literal character equality.
//
// See examples in example_test.go.
package align
