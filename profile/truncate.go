package profile

import "math"

// Mask reports which entries of n2 are invalid. An entry is invalid when
// it is NaN or ±Inf, the conventional encoding for samples obscured by
// topography. The returned slice has the same length as n2.
//
// Complexity: O(n), one allocation.
func Mask(n2 []float64) []bool {
	mask := make([]bool, len(n2))
	for i, v := range n2 {
		mask[i] = math.IsNaN(v) || math.IsInf(v, 0)
	}

	return mask
}

// Truncate removes the trailing topography-obscured region from a
// (z, N²) profile.
//
// z holds the depths at which n2 is sampled (surface at 0, increasing
// downward); n2 holds the squared buoyancy frequency, with samples below
// topography set to NaN (or ±Inf). When no invalid samples exist the
// inputs are returned unchanged. Otherwise the invalid samples must form
// one contiguous block ending at the deepest sample; the returned slices
// are subslices of the inputs covering the valid leading region, order
// preserved.
//
// Errors:
//   - ErrLengthMismatch   — len(z) != len(n2).
//   - ErrMaskNotMonotonic — invalid samples are non-contiguous, not at
//     the bottom of the column, or cover the whole column.
//
// Complexity: O(n); no copies are made.
func Truncate(z, n2 []float64) (zOut, n2Out []float64, err error) {
	if len(z) != len(n2) {
		return nil, nil, ErrLengthMismatch
	}

	mask := Mask(n2)
	invalid := 0
	for _, m := range mask {
		if m {
			invalid++
		}
	}
	if invalid == 0 {
		return z, n2, nil
	}

	// The invalid block must sit at the bottom of the column: last entry
	// invalid and exactly one valid→invalid transition over the sequence.
	edges := 0
	for i := 1; i < len(mask); i++ {
		if mask[i] != mask[i-1] {
			edges++
		}
	}
	if !mask[len(mask)-1] || edges != 1 {
		return nil, nil, ErrMaskNotMonotonic
	}

	valid := len(mask) - invalid

	return z[:valid], n2[:valid], nil
}
