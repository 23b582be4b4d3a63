package align

import "math"

// dpState holds the three affine-gap score grids, the traceback grid,
// and the running global maximum for one alignment call. Grids are flat
// row-major (n+1)×(m+1) buffers indexed i*(m+1)+j; the state is created
// by fill's caller, consumed by traceback, and never shared.
//
// Grid meanings:
//   - h — best local-alignment score ending exactly at (i,j)
//   - e — best score whose last step is a gap in seq1 (consumes seq2[j-1])
//   - f — best score whose last step is a gap in seq2 (consumes seq1[i-1])
type dpState struct {
	n, m int

	h, e, f []float64
	trace   []move

	bestScore    float64
	bestI, bestJ int
}

// newDPState allocates zeroed grids for sequences of length n and m and
// applies the local-alignment boundary: row/column 0 of h stay 0, while
// row/column 0 of e and f are -Inf (no gap run can end on the border).
func newDPState(n, m int) *dpState {
	size := (n + 1) * (m + 1)
	d := &dpState{
		n:     n,
		m:     m,
		h:     make([]float64, size),
		e:     make([]float64, size),
		f:     make([]float64, size),
		trace: make([]move, size),
	}

	negInf := math.Inf(-1)
	for k := range d.e {
		d.e[k] = negInf
		d.f[k] = negInf
	}

	return d
}

// at converts a (row, col) pair into a flat grid offset.
func (d *dpState) at(i, j int) int {
	return i*(d.m+1) + j
}

// fill populates the grids row-major, i outer and j inner. The order is
// mandatory: cell (i,j) reads (i-1,j-1), (i-1,j) and (i,j-1), all of
// which are final by the time (i,j) is computed.
//
// Per cell:
//
//	diag = h[i-1][j-1] + score(seq1[i-1], seq2[j-1])
//	e    = max(h[i][j-1] + GapOpen + GapExt, e[i][j-1] + GapExt)
//	f    = max(h[i-1][j] + GapOpen + GapExt, f[i-1][j] + GapExt)
//	h    = max(0, diag, e, f)
//
// The traceback tag is chosen by ordered exact-equality tests —
// STOP, then diagonal, then f (up), then e (left) by elimination.
// A later cell that merely ties bestScore does not displace the first
// one found; the strict > keeps the reported alignment deterministic.
func (d *dpState) fill(seq1, seq2 string, opts Options) {
	var (
		idx, up, left, diagIdx int
		diag                   float64
	)
	for i := 1; i <= d.n; i++ {
		for j := 1; j <= d.m; j++ {
			idx = d.at(i, j)
			up = d.at(i-1, j)
			left = d.at(i, j-1)
			diagIdx = d.at(i-1, j-1)

			diag = d.h[diagIdx] + opts.score(seq1[i-1], seq2[j-1])

			d.e[idx] = math.Max(
				d.h[left]+opts.GapOpen+opts.GapExt,
				d.e[left]+opts.GapExt,
			)
			d.f[idx] = math.Max(
				d.h[up]+opts.GapOpen+opts.GapExt,
				d.f[up]+opts.GapExt,
			)

			best := max3(diag, d.e[idx], d.f[idx])
			if best < 0 {
				best = 0
			}
			d.h[idx] = best

			switch {
			case best == 0:
				d.trace[idx] = moveStop
			case best == diag:
				d.trace[idx] = moveDiag
			case best == d.f[idx]:
				d.trace[idx] = moveUp
			default:
				d.trace[idx] = moveLeft
			}

			if best > d.bestScore {
				d.bestScore = best
				d.bestI, d.bestJ = i, j
			}
		}
	}
}

// max3 returns the maximum of three float64 values.
func max3(a, b, c float64) float64 {
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
