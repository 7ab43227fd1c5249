package modes

import "errors"

var (
	// ErrLengthMismatch indicates z and N2 differ in length.
	ErrLengthMismatch = errors.New("modes: z and N2 must have the same length")

	// ErrProfileTooShort indicates fewer than two N2 samples; with a single
	// center there is no interior spacing to infer the column depth from.
	ErrProfileTooShort = errors.New("modes: at least two N2 samples are required")

	// ErrNotMonotonic indicates depth samples that do not strictly increase.
	ErrNotMonotonic = errors.New("modes: z should be monotonically increasing")

	// ErrDepthTooShallow indicates a supplied total depth at or above the
	// deepest sample.
	ErrDepthTooShallow = errors.New("modes: depth should not be less than maximum z")

	// ErrInvalidN2 indicates an N2 profile whose values cannot produce a
	// finite operator (NaN, ±Inf, or zero stratification).
	ErrInvalidN2 = errors.New("modes: N2 must be finite and nonzero at every level")

	// ErrZeroCoriolis indicates f0 == 0, for which no deformation radius exists.
	ErrZeroCoriolis = errors.New("modes: Coriolis parameter must be nonzero")

	// ErrComplexEigenpair indicates the eigensolver returned imaginary parts
	// above tolerance. The operator is similar to a self-adjoint one, so a
	// complex spectrum means an assembly bug or numerical instability.
	ErrComplexEigenpair = errors.New("modes: eigenpairs have non-negligible imaginary parts")

	// ErrPositiveEigenvalue indicates an eigenvalue above the null-mode
	// tolerance on the wrong side of zero; (-λ)^(-1/2) is undefined there.
	ErrPositiveEigenvalue = errors.New("modes: positive eigenvalue cannot yield a deformation radius")

	// ErrEigenFailed indicates the eigen decomposition did not converge.
	ErrEigenFailed = errors.New("modes: eigen decomposition failed")
)
