package align

// traceback walks the pointer grid backward from the best cell, emitting
// aligned symbol pairs until it reaches a STOP cell or the grid border.
// It returns the two aligned byte slices (already reversed into
// left-to-right order) and the terminal (i,j), which fixes the
// alignment's 0-indexed start position in each sequence.
//
// A bestScore of 0 means no positive-scoring alignment exists; the walk
// then ends immediately and both slices come back empty.
func (d *dpState) traceback(seq1, seq2 string) (aligned1, aligned2 []byte, i, j int) {
	i, j = d.bestI, d.bestJ
	for i > 0 && j > 0 && d.h[d.at(i, j)] > 0 {
		switch d.trace[d.at(i, j)] {
		case moveDiag:
			aligned1 = append(aligned1, seq1[i-1])
			aligned2 = append(aligned2, seq2[j-1])
			i--
			j--
		case moveUp:
			aligned1 = append(aligned1, seq1[i-1])
			aligned2 = append(aligned2, Gap)
			i--
		case moveLeft:
			aligned1 = append(aligned1, Gap)
			aligned2 = append(aligned2, seq2[j-1])
			j--
		default: // moveStop
			return reverse(aligned1), reverse(aligned2), i, j
		}
	}

	return reverse(aligned1), reverse(aligned2), i, j
}

// reverse flips a byte slice in place and returns it; traceback emits
// pairs end-to-start.
func reverse(b []byte) []byte {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}

	return b
}
