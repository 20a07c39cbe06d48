// Package vlattice implements the core data structures of a Japanese
// morphological analyzer: a Viterbi lattice for minimum-cost morpheme
// segmentation and a branch-and-bound reading-candidate enumerator.
//
// Subpackages:
//
//	wordid/     — opaque word-id bit-packing and legacy-id conversion
//	connmatrix/ — left/right connection-cost matrix
//	lexicon/    — word-info lookup by id, with field-subset projection
//	inputbuf/   — codepoint-indexed original/current text buffer
//	lattice/    — the Viterbi DP engine (insert, connect, traceback)
//	reading/    — K-best reading-candidate enumeration over a built lattice
package vlattice
