package align_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlign_EmptyInput verifies that Align returns ErrEmptySequence
// when either input sequence is empty.
func TestAlign_EmptyInput(t *testing.T) {
	opts := align.DefaultOptions()

	_, err := align.Align("", "ACGT", &opts)
	assert.ErrorIs(t, err, align.ErrEmptySequence, "empty first sequence should error")

	_, err = align.Align("ACGT", "", &opts)
	assert.ErrorIs(t, err, align.ErrEmptySequence, "empty second sequence should error")

	_, err = align.Align("", "", &opts)
	assert.ErrorIs(t, err, align.ErrEmptySequence, "two empty sequences should error")
}

// TestAlign_NilOptionsDefaults confirms a nil Options pointer behaves
// exactly like DefaultOptions.
func TestAlign_NilOptionsDefaults(t *testing.T) {
	opts := align.DefaultOptions()
	want, err := align.Align("ACACACTA", "AGCACACA", &opts)
	require.NoError(t, err)

	got, err := align.Align("ACACACTA", "AGCACACA", nil)
	require.NoError(t, err)
	assert.Equal(t, want, got, "nil opts must equal DefaultOptions")
}

// TestAlign_SelfAlignment checks that a sequence aligned against itself
// spans the whole input with score match*len, 100% identity and no gaps.
func TestAlign_SelfAlignment(t *testing.T) {
	const seq = "GATTACA"
	opts := align.DefaultOptions()

	res, err := align.Align(seq, seq, &opts)
	require.NoError(t, err)

	assert.Equal(t, seq, res.AlignedSeq1, "self-alignment keeps seq1 intact")
	assert.Equal(t, seq, res.AlignedSeq2, "self-alignment keeps seq2 intact")
	assert.Equal(t, opts.Match*float64(len(seq)), res.Score, "score must be match*len")
	assert.Equal(t, 100.0, res.Identity, "identity must be 100 percent")
	assert.Zero(t, res.Gaps, "no gaps in a self-alignment")
	assert.Zero(t, res.Mismatches, "no mismatches in a self-alignment")
	assert.Equal(t, 1, res.StartSeq1, "span starts at 1")
	assert.Equal(t, len(seq), res.EndSeq1, "span ends at len(seq)")
	assert.Equal(t, 1, res.StartSeq2)
	assert.Equal(t, len(seq), res.EndSeq2)
}

// TestAlign_DisjointAlphabets verifies that sequences sharing no symbols
// yield score 0 and empty aligned strings.
func TestAlign_DisjointAlphabets(t *testing.T) {
	opts := align.DefaultOptions()

	res, err := align.Align("AAAA", "TTTT", &opts)
	require.NoError(t, err)

	assert.Zero(t, res.Score, "no positive-scoring alignment exists")
	assert.Empty(t, res.AlignedSeq1, "aligned seq1 must be empty")
	assert.Empty(t, res.AlignedSeq2, "aligned seq2 must be empty")
	assert.Zero(t, res.Length, "alignment length must be 0")
	assert.Zero(t, res.Identity, "identity of an empty alignment is 0")
}

// TestAlign_TextbookScenario runs the canonical ACACACTA/AGCACACA pair
// with the conventional 5/-4/-12/-2 scheme. With a gap opening this
// expensive the optimal local alignment is the ungapped ACACA block.
func TestAlign_TextbookScenario(t *testing.T) {
	opts := align.DefaultOptions()

	res, err := align.Align("ACACACTA", "AGCACACA", &opts)
	require.NoError(t, err)

	assert.Equal(t, "ACACA", res.AlignedSeq1)
	assert.Equal(t, "ACACA", res.AlignedSeq2)
	assert.Equal(t, 25.0, res.Score, "5 matches at +5 each")
	assert.Equal(t, 1, res.StartSeq1)
	assert.Equal(t, 5, res.EndSeq1)
	assert.Equal(t, 4, res.StartSeq2)
	assert.Equal(t, 8, res.EndSeq2)
	assert.Greater(t, res.Score, 0.0, "score must be positive")
	assert.Equal(t, 5, res.Length)
	assert.Zero(t, res.Gaps)
	assert.Zero(t, res.Mismatches)
	assert.Equal(t, 100.0, res.Identity)
}

// TestAlign_AffineGapPreferred checks that with a mild gap scheme a
// single affine gap run beats breaking the alignment: ACGTTTACGT vs
// ACGTACGT opens one two-column gap in seq2.
func TestAlign_AffineGapPreferred(t *testing.T) {
	opts := align.Options{Match: 5, Mismatch: -4, GapOpen: -3, GapExt: -1}

	res, err := align.Align("ACGTTTACGT", "ACGTACGT", &opts)
	require.NoError(t, err)

	assert.Equal(t, "ACGTTTACGT", res.AlignedSeq1)
	assert.Equal(t, "ACG--TACGT", res.AlignedSeq2)
	assert.Equal(t, 35.0, res.Score, "8*5 - (3+1) - 1 = 35")
	assert.Equal(t, 2, res.Gaps, "one gap run of two columns")
	assert.Zero(t, res.Mismatches)
	assert.Equal(t, 80.0, res.Identity, "8 matches over 10 columns")
	assert.Equal(t, 10, res.Length)
}

// TestAlign_GapRun verifies an affine gap inside a conserved block:
// TGTTACGG vs GGTTGACTA under 3/-3/-2/-2 yields GTT-AC / GTTGAC.
func TestAlign_GapRun(t *testing.T) {
	opts := align.Options{Match: 3, Mismatch: -3, GapOpen: -2, GapExt: -2}

	res, err := align.Align("TGTTACGG", "GGTTGACTA", &opts)
	require.NoError(t, err)

	assert.Equal(t, "GTT-AC", res.AlignedSeq1)
	assert.Equal(t, "GTTGAC", res.AlignedSeq2)
	assert.Equal(t, 11.0, res.Score, "5*3 - (2+2) = 11")
	assert.Equal(t, 2, res.StartSeq1)
	assert.Equal(t, 6, res.EndSeq1)
	assert.Equal(t, 2, res.StartSeq2)
	assert.Equal(t, 7, res.EndSeq2)
	assert.Equal(t, 1, res.Gaps)
	assert.Zero(t, res.Mismatches)
	assert.InDelta(t, 83.333, res.Identity, 0.001, "5 matches over 6 columns")
}

// TestAlign_MirrorSymmetry swaps the inputs and checks the mirrored
// result: identical score, aligned strings and spans exchanged.
func TestAlign_MirrorSymmetry(t *testing.T) {
	opts := align.Options{Match: 3, Mismatch: -3, GapOpen: -2, GapExt: -2}

	fwd, err := align.Align("TGTTACGG", "GGTTGACTA", &opts)
	require.NoError(t, err)
	rev, err := align.Align("GGTTGACTA", "TGTTACGG", &opts)
	require.NoError(t, err)

	assert.Equal(t, fwd.Score, rev.Score, "score is symmetric")
	assert.Equal(t, fwd.AlignedSeq1, rev.AlignedSeq2, "aligned strings swap")
	assert.Equal(t, fwd.AlignedSeq2, rev.AlignedSeq1, "aligned strings swap")
	assert.Equal(t, fwd.StartSeq1, rev.StartSeq2, "spans swap")
	assert.Equal(t, fwd.EndSeq1, rev.EndSeq2, "spans swap")
	assert.Equal(t, fwd.StartSeq2, rev.StartSeq1, "spans swap")
	assert.Equal(t, fwd.EndSeq2, rev.EndSeq1, "spans swap")
	assert.Equal(t, fwd.Gaps, rev.Gaps)
	assert.Equal(t, fwd.Mismatches, rev.Mismatches)
	assert.Equal(t, fwd.Identity, rev.Identity)
}

// TestAlign_SubstringRecovery confirms the gap-stripped aligned strings
// are the claimed contiguous substrings of the originals.
func TestAlign_SubstringRecovery(t *testing.T) {
	const (
		seq1 = "CCCTAGG"
		seq2 = "TAG"
	)
	opts := align.DefaultOptions()

	res, err := align.Align(seq1, seq2, &opts)
	require.NoError(t, err)

	stripped1 := strings.ReplaceAll(res.AlignedSeq1, "-", "")
	stripped2 := strings.ReplaceAll(res.AlignedSeq2, "-", "")
	assert.Equal(t, seq1[res.StartSeq1-1:res.EndSeq1], stripped1,
		"aligned seq1 minus gaps must be seq1[start..end]")
	assert.Equal(t, seq2[res.StartSeq2-1:res.EndSeq2], stripped2,
		"aligned seq2 minus gaps must be seq2[start..end]")
	assert.Equal(t, "TAG", stripped1)
	assert.Equal(t, 4, res.StartSeq1, "TAG starts at position 4 of CCCTAGG")
	assert.Equal(t, 6, res.EndSeq1)
}

// TestAlign_CountsConsistency checks matches+mismatches+gaps == Length
// and the two aligned strings always have equal length, across a spread
// of inputs and parameter sets.
func TestAlign_CountsConsistency(t *testing.T) {
	cases := []struct {
		name       string
		seq1, seq2 string
		opts       align.Options
	}{
		{"default scheme", "ACACACTA", "AGCACACA", align.DefaultOptions()},
		{"cheap gaps", "ACGTTTACGT", "ACGTACGT", align.Options{Match: 5, Mismatch: -4, GapOpen: -3, GapExt: -1}},
		{"unit scores", "ACACACTA", "AGCACACA", align.Options{Match: 1, Mismatch: -1, GapOpen: -1, GapExt: -1}},
		{"short in long", "CCCTAGG", "TAG", align.DefaultOptions()},
		{"no overlap", "AAAA", "TTTT", align.DefaultOptions()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := align.Align(tc.seq1, tc.seq2, &tc.opts)
			require.NoError(t, err)

			assert.Len(t, res.AlignedSeq2, len(res.AlignedSeq1), "aligned strings share one length")
			assert.Equal(t, res.Length, len(res.AlignedSeq1), "Length reflects the aligned strings")

			matches := 0
			for k := 0; k < res.Length; k++ {
				a, b := res.AlignedSeq1[k], res.AlignedSeq2[k]
				assert.False(t, a == '-' && b == '-', "no double-gap columns")
				if a == b && a != '-' {
					matches++
				}
			}
			assert.Equal(t, res.Length, matches+res.Mismatches+res.Gaps,
				"matches+mismatches+gaps must equal alignment length")
			assert.GreaterOrEqual(t, res.Score, 0.0, "local alignment score is never negative")
		})
	}
}

// TestAlign_LowercaseInput verifies inputs are uppercased before
// scoring, so case differences never count as mismatches.
func TestAlign_LowercaseInput(t *testing.T) {
	opts := align.DefaultOptions()

	res, err := align.Align("acgt", "ACGT", &opts)
	require.NoError(t, err)

	assert.Equal(t, "ACGT", res.AlignedSeq1)
	assert.Equal(t, "ACGT", res.AlignedSeq2)
	assert.Equal(t, 20.0, res.Score)
	assert.Equal(t, 100.0, res.Identity)
}

// TestAlign_AmbiguityCodesLiteral confirms IUPAC ambiguity codes are
// compared literally: N matches N, but N never matches A.
func TestAlign_AmbiguityCodesLiteral(t *testing.T) {
	opts := align.DefaultOptions()

	res, err := align.Align("NNN", "NNN", &opts)
	require.NoError(t, err)
	assert.Equal(t, 15.0, res.Score, "identical ambiguity codes score as matches")
	assert.Equal(t, 100.0, res.Identity)

	res, err = align.Align("ANA", "AAA", &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Mismatches, "N vs A is a literal mismatch")
}

// TestAlign_TieBreakDeterminism runs the same ambiguous input twice and
// expects byte-identical results: the first best cell in fill order wins
// and the tag precedence is fixed.
func TestAlign_TieBreakDeterminism(t *testing.T) {
	opts := align.Options{Match: 1, Mismatch: -1, GapOpen: -1, GapExt: -1}

	first, err := align.Align("GGGGG", "GGG", &opts)
	require.NoError(t, err)
	second, err := align.Align("GGGGG", "GGG", &opts)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated runs must be identical")
	assert.Equal(t, 1, first.StartSeq1, "earliest tied cell in fill order is kept")
	assert.Equal(t, 3, first.EndSeq1)
}

// TestAlign_DegenerateParameters ensures out-of-convention scoring runs
// unmodified — the engine never clamps or validates ranges.
func TestAlign_DegenerateParameters(t *testing.T) {
	// Positive gap extension: gaps become profitable; the call must
	// still terminate and keep the counts consistent.
	opts := align.Options{Match: 1, Mismatch: -1, GapOpen: -1, GapExt: 2}

	res, err := align.Align("ACGT", "ACGT", &opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Score, 0.0)
	assert.Len(t, res.AlignedSeq2, len(res.AlignedSeq1))
}
