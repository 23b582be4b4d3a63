package fasta

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Parse reads the first FASTA record from r.
//
// Lines are trimmed of surrounding whitespace; blank lines are skipped.
// The first line starting with '>' becomes the header (sans '>'); every
// following sequence line is uppercased and concatenated. A second
// header line terminates parsing — only the first record is read.
//
// Errors:
//   - ErrNoHeader    — no '>' line appears in the input.
//   - ErrNoSequence  — the header has no sequence data under it.
//   - *InvalidCharError (wraps ErrInvalidChar) — the sequence contains
//     symbols outside the IUPAC nucleotide alphabet.
func Parse(r io.Reader) (Record, error) {
	var (
		header    string
		gotHeader bool
		sequence  strings.Builder
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if gotHeader {
				break // only the first record is read
			}
			header = strings.TrimSpace(line[1:])
			gotHeader = true

			continue
		}
		sequence.WriteString(strings.ToUpper(line))
	}
	if err := scanner.Err(); err != nil {
		return Record{}, err
	}

	if !gotHeader {
		return Record{}, ErrNoHeader
	}

	seq := sequence.String()
	if seq == "" {
		return Record{}, ErrNoSequence
	}

	if bad := invalidChars(seq); len(bad) > 0 {
		return Record{}, &InvalidCharError{Chars: bad}
	}

	return Record{Header: header, Sequence: seq}, nil
}

// ParseFile opens path and parses its first FASTA record.
func ParseFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer f.Close()

	return Parse(f)
}

// invalidChars collects the distinct symbols of seq that are not IUPAC
// nucleotide codes, in first-appearance order.
func invalidChars(seq string) []byte {
	var (
		seen [256]bool
		bad  []byte
	)
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if !validNucleotide(c) && !seen[c] {
			seen[c] = true
			bad = append(bad, c)
		}
	}

	return bad
}
