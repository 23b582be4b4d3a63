// Package fasta reads single-record FASTA files of nucleotide sequences
// and validates them against the IUPAC alphabet.
//
// The parser is deliberately conservative: it reads the FIRST record of
// the input (a second '>' header ends parsing), concatenates sequence
// lines, uppercases the result and rejects anything outside
// {A,C,G,T,U,R,Y,K,M,S,W,B,D,H,V,N}. Downstream consumers — the align
// package in particular — may therefore assume clean, uppercase,
// non-empty sequences and skip re-validation.
//
// ⚙️ Usage:
//
//	rec, err := fasta.ParseFile("query.fasta")
//	if err != nil {
//	  // ErrNoHeader, ErrNoSequence, or an *InvalidCharError
//	}
//	fmt.Println(rec.Header, len(rec.Sequence))
//
// Errors are sentinel-based and matched with errors.Is; the invalid
// character case carries the offending symbols in an InvalidCharError
// that wraps ErrInvalidChar.
package fasta
