// Package lexicon defines the read-only word-info lookup surface the
// lattice and reading-candidate enumerator consult: InfoSubset selects
// which WordInfo fields a caller actually needs, and Lexicon resolves a
// wordid.ID to a WordInfo populated to at least that subset.
//
// MapLexicon is an in-memory Lexicon backed by a map, suited for tests and
// for embedding a prebuilt dictionary; it does not implement on-disk
// dictionary loading, which is out of scope here (see SPEC_FULL.md).
package lexicon
