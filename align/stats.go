package align

// summarize derives the immutable Result from the traceback output.
// startI/startJ are the 0-indexed terminal coordinates of the backward
// walk; endI/endJ are the matrix indices of the best cell, which are
// already the 1-indexed inclusive span ends.
func summarize(aligned1, aligned2 []byte, score float64, startI, startJ, endI, endJ int) Result {
	length := len(aligned1)

	var matches, mismatches, gaps int
	for k := 0; k < length; k++ {
		a, b := aligned1[k], aligned2[k]
		switch {
		case a == Gap || b == Gap:
			gaps++
		case a == b:
			matches++
		default:
			mismatches++
		}
	}

	identity := 0.0
	if length > 0 {
		identity = float64(matches) / float64(length) * 100
	}

	return Result{
		AlignedSeq1: string(aligned1),
		AlignedSeq2: string(aligned2),
		Score:       score,
		StartSeq1:   startI + 1,
		EndSeq1:     endI,
		StartSeq2:   startJ + 1,
		EndSeq2:     endJ,
		Identity:    identity,
		Gaps:        gaps,
		Mismatches:  mismatches,
		Length:      length,
	}
}
