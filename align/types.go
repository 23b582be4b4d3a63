// Package align defines options, result types, and sentinel errors
// for the align subpackage of github.com/katalvlaran/seqalign.
package align

import "errors"

// Sentinel errors for alignment operations.
var (
	// ErrEmptySequence indicates one or both input sequences are empty.
	ErrEmptySequence = errors.New("align: input sequences must be non-empty")
)

// Gap is the marker written into an aligned sequence wherever the other
// sequence contributes a symbol without a counterpart.
const Gap = '-'

// Options configures Smith–Waterman scoring.
//
// Fields:
//   - Match    — reward for identical symbols (conventionally > 0).
//   - Mismatch — score for differing symbols (conventionally ≤ 0).
//   - GapOpen  — penalty charged once when a gap run starts (≤ 0).
//   - GapExt   — penalty charged per gap position, including the
//     opening one (≤ 0).
//
// Values are used exactly as given. Nothing prevents degenerate
// combinations such as GapExt > 0 or Match < Mismatch; they run
// unmodified.
//
// Example:
//
//	opts := align.DefaultOptions()
//	opts.GapOpen = -8 // cheaper gap opening
//	res, err := align.Align(a, b, &opts)
type Options struct {
	Match    float64
	Mismatch float64
	GapOpen  float64
	GapExt   float64
}

// DefaultOptions returns the conventional nucleotide scoring scheme:
// Match=5, Mismatch=-4, GapOpen=-12, GapExt=-2.
func DefaultOptions() Options {
	return Options{
		Match:    5,
		Mismatch: -4,
		GapOpen:  -12,
		GapExt:   -2,
	}
}

// score returns the substitution score for a pair of symbols: Match on
// exact character equality, Mismatch otherwise. IUPAC ambiguity codes
// are compared literally, never set-wise.
func (o Options) score(a, b byte) float64 {
	if a == b {
		return o.Match
	}

	return o.Mismatch
}

// move records which recurrence case produced a cell of the main grid.
// The zero value is moveStop, matching the zero-filled traceback grid.
type move uint8

const (
	// moveStop terminates traceback: the cell scored zero.
	moveStop move = iota
	// moveDiag aligns seq1[i-1] with seq2[j-1] (match or mismatch).
	moveDiag
	// moveUp consumes seq1[i-1] against a gap in seq2.
	moveUp
	// moveLeft consumes seq2[j-1] against a gap in seq1.
	moveLeft
)

// Result is the immutable outcome of one local alignment.
//
// AlignedSeq1 and AlignedSeq2 always have equal length (Length), and a
// gap marker in one of them always faces a real symbol in the other —
// no column holds two gaps. Start/End coordinates are 1-indexed and
// inclusive, following biological convention; a zero-score alignment
// has empty aligned strings and End < Start.
type Result struct {
	// AlignedSeq1 is the aligned region of the first sequence, with Gap
	// markers inserted where the second sequence contributes a symbol.
	AlignedSeq1 string
	// AlignedSeq2 is the aligned region of the second sequence.
	AlignedSeq2 string
	// Score is the optimal local alignment score (≥ 0).
	Score float64
	// StartSeq1 and EndSeq1 delimit the aligned span of seq1, 1-indexed.
	StartSeq1, EndSeq1 int
	// StartSeq2 and EndSeq2 delimit the aligned span of seq2, 1-indexed.
	StartSeq2, EndSeq2 int
	// Identity is matches / Length * 100, or 0 for an empty alignment.
	Identity float64
	// Gaps is the total gap-marker count across both aligned strings.
	Gaps int
	// Mismatches counts columns where both symbols are present and differ.
	Mismatches int
	// Length is the number of alignment columns.
	Length int
}
