// Package reading implements the reading-candidate enumerator: a
// branch-and-bound DFS over an already-constructed lattice that finds the
// K lowest-cost paths whose concatenated, normalized readings match a
// given target string.
//
// Enumerate is the package entrypoint; Normalize defines the exact text
// normalization (NFKC, full Unicode lowercase, hiragana-to-katakana) both
// the target reading and every candidate token's match variants go
// through, so byte-prefix comparison between them is correct.
package reading
