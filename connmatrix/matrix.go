package connmatrix

import (
	"encoding/binary"
	"fmt"
)

// Matrix is a read-only 2-D cost lookup keyed by (leftID, rightID). Dense is
// the only implementation; the interface exists so the lattice and the
// reading-candidate searcher never depend on the concrete storage layout.
type Matrix interface {
	// Cost returns the connection cost between a left context id and a
	// right context id. Cost panics if either id is out of range, since
	// both ids originate from dictionary-validated nodes by the time they
	// reach a Matrix.
	Cost(leftID, rightID uint16) int16
	LeftSize() int
	RightSize() int
}

// Dense is a row-major int16 connection matrix: entry (left, right) lives at
// data[left*rightSize+right]. It stores cost_l -> r keyed the same way the
// dictionary's on-disk buffer does, so FromBytes is a straight byte copy.
type Dense struct {
	leftSize, rightSize int
	data                []int16
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, left, right uint16, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, left, right, err)
}

// NewDense allocates a leftSize x rightSize matrix of zero costs.
func NewDense(leftSize, rightSize int) (*Dense, error) {
	if leftSize <= 0 || rightSize <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{
		leftSize:  leftSize,
		rightSize: rightSize,
		data:      make([]int16, leftSize*rightSize),
	}, nil
}

// FromBytes parses a Dense matrix out of raw starting at offset. The region
// raw[offset : offset+leftSize*rightSize*2] is read as leftSize*rightSize
// little-endian int16 values in row-major (left-major) order, mirroring the
// layout a dictionary's connection matrix stores on disk.
func FromBytes(raw []byte, offset, leftSize, rightSize int) (*Dense, error) {
	if leftSize <= 0 || rightSize <= 0 {
		return nil, ErrInvalidDimensions
	}
	count := leftSize * rightSize
	need := offset + count*2
	if offset < 0 || need > len(raw) {
		return nil, ErrTruncatedBuffer
	}

	data := make([]int16, count)
	for i := 0; i < count; i++ {
		off := offset + i*2
		data[i] = int16(binary.LittleEndian.Uint16(raw[off : off+2]))
	}

	return &Dense{leftSize: leftSize, rightSize: rightSize, data: data}, nil
}

// LeftSize returns the number of left context ids the matrix covers.
func (m *Dense) LeftSize() int { return m.leftSize }

// RightSize returns the number of right context ids the matrix covers.
func (m *Dense) RightSize() int { return m.rightSize }

func (m *Dense) index(left, right uint16) (int, error) {
	if int(left) >= m.leftSize {
		return 0, denseErrorf("", left, right, ErrOutOfRange)
	}
	if int(right) >= m.rightSize {
		return 0, denseErrorf("", left, right, ErrOutOfRange)
	}
	return int(left)*m.rightSize + int(right), nil
}

// Update sets the connection cost for (left, right). Used while populating
// a matrix programmatically; dictionary-sourced matrices are normally built
// once via FromBytes and never mutated afterward.
func (m *Dense) Update(left, right uint16, cost int16) error {
	idx, err := m.index(left, right)
	if err != nil {
		return err
	}
	m.data[idx] = cost
	return nil
}

// Cost returns the connection cost between left and right. It panics if
// either id is out of range: by the time a Matrix is queried from the
// lattice, both ids have already been validated against the same
// dictionary's grammar, so an out-of-range id indicates a programming
// error, not bad input.
func (m *Dense) Cost(left, right uint16) int16 {
	idx, err := m.index(left, right)
	if err != nil {
		panic(err)
	}
	return m.data[idx]
}
