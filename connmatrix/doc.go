// Package connmatrix provides the connection-cost matrix consulted whenever
// the lattice links a left node's right-id to a right node's left-id. Dense
// is a row-major int16 matrix, built either empty (for programmatic
// population, mainly in tests) or parsed from a dictionary's on-disk
// connection-matrix byte buffer.
package connmatrix
