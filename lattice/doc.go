// Package lattice implements the Viterbi lattice: incremental minimum-cost
// morpheme segmentation over a sentence, including the whitespace-bridging
// transition variant.
//
// A Lattice is built incrementally: Reset prepares it for a sentence of a
// given codepoint length, Insert adds candidate nodes in non-decreasing
// end-boundary order, ConnectEOS closes the lattice, and FillTopPath
// reconstructs the best path. A Lattice is reused across analyses; Reset
// clears its inner arrays without releasing their backing storage.
package lattice
