package connmatrix

import "errors"

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("connmatrix: dimensions must be > 0")

// ErrOutOfRange indicates that a left-id or right-id index is outside valid bounds.
var ErrOutOfRange = errors.New("connmatrix: index out of range")

// ErrTruncatedBuffer indicates that the source byte buffer is shorter than
// the declared left_size*right_size*2 bytes, starting at the given offset.
var ErrTruncatedBuffer = errors.New("connmatrix: truncated buffer")
