// Package modes: options and result types for the mode solver.
package modes

import "gonum.org/v1/gonum/mat"

const (
	// DefaultNumModes is the number of eigenpairs requested when
	// Options.NumModes is unset.
	DefaultNumModes = 6

	// DefaultImagTol is the absolute tolerance on imaginary parts of the
	// extracted eigenpairs; larger imaginary parts fail the reality check.
	DefaultImagTol = 1e-20

	// DefaultNullTol is the relative tolerance (against the operator's
	// infinity norm) below which an eigenvalue is snapped to zero and
	// treated as the barotropic null mode.
	DefaultNullTol = 1e-10
)

// Options configures Solve.
//
// Fields:
//   - NumModes — number of eigenpairs to extract, counted from the
//     smallest-magnitude end of the spectrum. Values < 1 fall back to
//     DefaultNumModes; requests beyond the operator dimension are clamped.
//   - Depth    — total water-column depth. Must exceed the deepest sample
//     when set; ≤ 0 means "infer": half the last center spacing is
//     extrapolated below the deepest sample.
//   - ImagTol  — reality-check tolerance; ≤ 0 falls back to DefaultImagTol.
//   - NullTol  — barotropic null-mode tolerance; ≤ 0 falls back to
//     DefaultNullTol.
//   - Solver   — the eigen-extraction implementation; nil means GonumSolver.
//
// Example:
//
//	opts := modes.DefaultOptions()
//	opts.NumModes = 3
//	opts.Depth = 4000 // meters; bottom known from bathymetry
//	res, err := modes.Solve(z, n2, f0, &opts)
type Options struct {
	NumModes int
	Depth    float64
	ImagTol  float64
	NullTol  float64
	Solver   EigenSolver
}

// DefaultOptions returns the canonical defaults: six modes, inferred
// depth, gonum-backed eigensolver.
func DefaultOptions() Options {
	return Options{
		NumModes: DefaultNumModes,
		ImagTol:  DefaultImagTol,
		NullTol:  DefaultNullTol,
		Solver:   GonumSolver{},
	}
}

// Result is the output of Solve.
type Result struct {
	// Faces holds the depths at which mode shapes are defined: surface,
	// midpoints between N2 samples, bottom. Length = len(z)+1.
	Faces []float64

	// DeformationRadii holds one radius per extracted mode, sorted
	// descending. The barotropic mode, when present, is +Inf and first.
	DeformationRadii []float64

	// Modes holds the mode shapes, one column per mode, rows aligned with
	// Faces and columns aligned with DeformationRadii. Shapes carry the
	// eigensolver's normalization (unit Euclidean norm) and arbitrary sign.
	Modes *mat.Dense
}

// NumModes returns the number of extracted modes.
func (r *Result) NumModes() int { return len(r.DeformationRadii) }

// Mode returns a copy of the i-th mode shape, aligned with Faces.
func (r *Result) Mode(i int) []float64 {
	out := make([]float64, len(r.Faces))
	mat.Col(out, i, r.Modes)

	return out
}
