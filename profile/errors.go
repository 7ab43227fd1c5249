package profile

import "errors"

var (
	// ErrLengthMismatch indicates z and N2 differ in length.
	ErrLengthMismatch = errors.New("profile: z and N2 must have the same length")

	// ErrMaskNotMonotonic indicates invalid N2 samples that do not form a
	// single contiguous block at the bottom of the column.
	ErrMaskNotMonotonic = errors.New("profile: topographic mask should be monotonic")
)
