// Package render formats an alignment Result as human-readable text:
// a summary banner, then line-wrapped sequence blocks with a 1-indexed
// position ruler and a match/mismatch midline.
//
// Midline symbols per alignment column:
//
//	'|' — both symbols present and equal (a match)
//	'.' — both symbols present and different (a mismatch)
//	' ' — either side is a gap
//
// Sample output for GTT-AC / GTTGAC:
//
//	Seq1     2  GTT-AC  6
//	            ||| ||
//	Seq2     2  GTTGAC  7
//
// Rendering is pure string work with no error surface; a non-positive
// width falls back to the default of 60 columns per block.
package render
