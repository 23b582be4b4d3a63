// Package fasta defines the record type, sentinel errors, and the IUPAC
// nucleotide alphabet for the fasta subpackage of
// github.com/katalvlaran/seqalign.
package fasta

import (
	"errors"
	"fmt"
)

// Sentinel errors for FASTA parsing.
var (
	// ErrNoHeader indicates the input has no '>' header line.
	ErrNoHeader = errors.New("fasta: no header line starting with '>' found")
	// ErrNoSequence indicates a header with no sequence data under it.
	ErrNoSequence = errors.New("fasta: no sequence data found")
	// ErrInvalidChar indicates a symbol outside the IUPAC nucleotide set.
	ErrInvalidChar = errors.New("fasta: invalid nucleotide character")
)

// Record is a single FASTA record: the header line (without '>') and
// the concatenated, uppercased nucleotide sequence.
type Record struct {
	Header   string
	Sequence string
}

// InvalidCharError reports the set of offending symbols found in a
// sequence. It wraps ErrInvalidChar, so errors.Is(err, ErrInvalidChar)
// matches.
type InvalidCharError struct {
	Chars []byte
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("fasta: invalid nucleotide characters found: %q", e.Chars)
}

// Unwrap lets errors.Is match the ErrInvalidChar sentinel.
func (e *InvalidCharError) Unwrap() error {
	return ErrInvalidChar
}

// iupac marks every valid (uppercase) IUPAC nucleotide code, ambiguity
// codes included. Membership only — it says nothing about which bases a
// code stands for.
var iupac [256]bool

func init() {
	for _, c := range []byte("ACGTURYKMSWBDHVN") {
		iupac[c] = true
	}
}

// validNucleotide reports whether c is an uppercase IUPAC nucleotide code.
func validNucleotide(c byte) bool {
	return iupac[c]
}
