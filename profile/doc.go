// Package profile validates and truncates water-column stratification
// profiles before they reach the mode solver.
//
// An N² (squared buoyancy frequency) profile sampled on a vertical cast
// often ends in masked or NaN values where the cast ran into topography.
// The profile package provides:
//
//   - Mask — derive the validity mask of an N² profile (invalid = NaN/±Inf).
//   - Truncate — strip a single contiguous trailing block of invalid
//     samples, returning the valid leading region of both z and N².
//
// Truncate is strict: invalid samples anywhere other than a single block
// at the deepest end of the column are a data error, not topography, and
// are rejected with ErrMaskNotMonotonic.
//
// All functions are pure; inputs are never modified.
package profile
