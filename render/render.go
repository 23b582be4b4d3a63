package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seqalign/align"
)

// DefaultWidth is the number of alignment columns per wrapped block.
const DefaultWidth = 60

// Options configures alignment rendering.
//
// Fields:
//   - Width — alignment columns per block. Values ≤ 0 fall back to
//     DefaultWidth.
type Options struct {
	Width int
}

// DefaultOptions returns rendering defaults: Width=60.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth}
}

// Format renders res as a multi-line report: banner, score and count
// summary, 1-indexed region spans, then the wrapped alignment blocks.
// A nil opts uses DefaultOptions. A zero-length alignment renders the
// summary with no blocks.
func Format(res align.Result, opts *Options) string {
	width := DefaultWidth
	if opts != nil && opts.Width > 0 {
		width = opts.Width
	}

	var lines []string
	rule := strings.Repeat("=", 70)

	lines = append(lines,
		rule,
		"  LOCAL ALIGNMENT (Smith-Waterman, Affine Gap Penalties)",
		rule,
		"",
		fmt.Sprintf("  Score: %.1f", res.Score),
		fmt.Sprintf("  Identity: %.1f%% (%d/%d)", res.Identity, countMatches(res), res.Length),
		fmt.Sprintf("  Gaps: %d/%d", res.Gaps, res.Length),
		fmt.Sprintf("  Mismatches: %d/%d", res.Mismatches, res.Length),
		fmt.Sprintf("  Alignment length: %d", res.Length),
		"",
		fmt.Sprintf("  Seq1 region: %d – %d", res.StartSeq1, res.EndSeq1),
		fmt.Sprintf("  Seq2 region: %d – %d", res.StartSeq2, res.EndSeq2),
		"",
		strings.Repeat("-", 70),
		"",
	)

	mid := midline(res.AlignedSeq1, res.AlignedSeq2)

	pos1, pos2 := res.StartSeq1, res.StartSeq2
	for start := 0; start < res.Length; start += width {
		end := start + width
		if end > res.Length {
			end = res.Length
		}
		chunk1 := res.AlignedSeq1[start:end]
		chunk2 := res.AlignedSeq2[start:end]

		// End positions advance by the residues (non-gap symbols) each
		// chunk actually consumes.
		endPos1 := pos1 + residues(chunk1) - 1
		endPos2 := pos2 + residues(chunk2) - 1

		labelWidth := max3(digits(endPos1), digits(endPos2), 4)

		lines = append(lines,
			fmt.Sprintf("  Seq1  %*d  %s  %d", labelWidth, pos1, chunk1, endPos1),
			fmt.Sprintf("        %s  %s", strings.Repeat(" ", labelWidth), mid[start:end]),
			fmt.Sprintf("  Seq2  %*d  %s  %d", labelWidth, pos2, chunk2, endPos2),
			"",
		)

		pos1 = endPos1 + 1
		pos2 = endPos2 + 1
	}

	lines = append(lines, rule)

	return strings.Join(lines, "\n")
}

// midline builds the match(|)/mismatch(.)/gap( ) line for two aligned
// strings of equal length.
func midline(a, b string) string {
	var sb strings.Builder
	sb.Grow(len(a))
	for k := 0; k < len(a); k++ {
		switch {
		case a[k] == b[k] && a[k] != align.Gap:
			sb.WriteByte('|')
		case a[k] == align.Gap || b[k] == align.Gap:
			sb.WriteByte(' ')
		default:
			sb.WriteByte('.')
		}
	}

	return sb.String()
}

// countMatches counts the columns where both symbols are present and equal.
func countMatches(res align.Result) int {
	matches := 0
	for k := 0; k < res.Length; k++ {
		if res.AlignedSeq1[k] == res.AlignedSeq2[k] && res.AlignedSeq1[k] != align.Gap {
			matches++
		}
	}

	return matches
}

// residues counts the non-gap symbols of an aligned chunk.
func residues(chunk string) int {
	n := 0
	for k := 0; k < len(chunk); k++ {
		if chunk[k] != align.Gap {
			n++
		}
	}

	return n
}

// digits returns the decimal width of n.
func digits(n int) int {
	return len(fmt.Sprintf("%d", n))
}

// max3 returns the maximum of three int values.
func max3(a, b, c int) int {
	if a > b {
		if a > c {
			return a
		}

		return c
	}
	if b > c {
		return b
	}

	return c
}
