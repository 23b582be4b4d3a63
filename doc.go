// Package seqalign is a small, focused toolkit for pairwise nucleotide
// sequence alignment — from the core Smith–Waterman engine to FASTA
// input and human-readable alignment rendering.
//
// 🚀 What is seqalign?
//
//	A pure-Go library that brings together:
//		• Local alignment: Smith–Waterman with affine gap penalties
//		• Alignment statistics: identity, gaps, mismatches, 1-indexed spans
//		• FASTA parsing: single-record nucleotide files, IUPAC-validated
//		• Rendering: line-wrapped alignment view with position ruler & midline
//
// ✨ Why choose seqalign?
//
//   - Deterministic – documented tie-break rules, reproducible output
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Small API – one Options struct and one entry point per package
//
// Everything is organized under three subpackages plus a CLI:
//
//	align/  — Smith–Waterman engine, Options, Result, statistics
//	fasta/  — FASTA reader for nucleotide sequences (IUPAC alphabet)
//	render/ — text formatting of an alignment Result
//	cmd/    — seqalign, a small command-line front end
//
// Quick ASCII example:
//
//	Seq1  1  AC-ACACTA  8
//	         |. |||||.|
//	Seq2  1  AGCACAC-A  8
//
// Dive into each package's doc.go for full examples and walkthroughs.
//
//	go get github.com/katalvlaran/seqalign/align
package seqalign
