package oceanmodes

import (
	"github.com/roxyboy/oceanmodes/modes"
	"github.com/roxyboy/oceanmodes/profile"
)

// NeutralModes computes baroclinic neutral modes from a raw stratification
// cast. Samples of n2 below topography may be NaN (or ±Inf) provided they
// form one contiguous block at the bottom of the column; the profile is
// truncated to its valid region before solving.
//
// Returns the mode-shape depths, deformation radii (descending) and mode
// shapes; see modes.Solve for the solver contract and opts (nil means
// defaults).
//
// Errors from either stage propagate unchanged: profile.ErrLengthMismatch
// and profile.ErrMaskNotMonotonic from truncation, the modes sentinels
// from the solve. A cast whose valid region shrinks below two samples
// fails with modes.ErrProfileTooShort.
func NeutralModes(z, n2 []float64, f0 float64, opts *modes.Options) (*modes.Result, error) {
	zt, n2t, err := profile.Truncate(z, n2)
	if err != nil {
		return nil, err
	}

	return modes.Solve(zt, n2t, f0, opts)
}
