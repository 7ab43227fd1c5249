package modes

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Solve computes baroclinic neutral modes and deformation radii for a
// stratification profile.
//
// z holds the depths of the N² samples (strictly increasing, positive
// downward, surface at 0); n2 the squared buoyancy frequency at those
// depths, fully valid (run profile.Truncate first if the cast hit
// topography); f0 the Coriolis parameter. opts may be nil for defaults.
//
// Pipeline:
//  1. Build the staggered grid (NewGrid) and tridiagonal operator
//     (NewOperator).
//  2. Extract the NumModes eigenpairs of smallest magnitude via
//     opts.Solver.
//  3. Reality check: imaginary parts above ImagTol fail with
//     ErrComplexEigenpair; otherwise they are discarded.
//  4. Sort eigenpairs descending by eigenvalue, reordering eigenvector
//     columns in step, so the least-negative eigenvalue — the largest
//     deformation radius — comes first.
//  5. Scale: Ld = (-λ)^(-1/2)/f0. Eigenvalues within NullTol·‖L‖∞ of
//     zero are the barotropic null mode and map to Ld = +Inf; genuinely
//     positive eigenvalues fail with ErrPositiveEigenvalue.
//
// Failures from the eigensolver propagate wrapped; they are
// deterministic for fixed inputs, so no retry is attempted.
func Solve(z, n2 []float64, f0 float64, opts *Options) (*Result, error) {
	if f0 == 0 {
		return nil, ErrZeroCoriolis
	}
	if len(z) != len(n2) {
		return nil, ErrLengthMismatch
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.NumModes < 1 {
		o.NumModes = DefaultNumModes
	}
	if o.ImagTol <= 0 {
		o.ImagTol = DefaultImagTol
	}
	if o.NullTol <= 0 {
		o.NullTol = DefaultNullTol
	}
	if o.Solver == nil {
		o.Solver = GonumSolver{}
	}

	grid, err := NewGrid(z, o.Depth)
	if err != nil {
		return nil, err
	}
	op, err := NewOperator(grid, n2)
	if err != nil {
		return nil, err
	}

	k := o.NumModes
	if k > op.Dim() {
		k = op.Dim()
	}
	w, v, err := o.Solver.Eigen(op, k)
	if err != nil {
		return nil, fmt.Errorf("modes: eigen extraction: %w", err)
	}
	k = len(w)

	if v == nil {
		return nil, fmt.Errorf("modes: eigensolver returned no vectors for %d eigenvalues", k)
	}
	rows, cols := v.Dims()
	if rows != op.Dim() || cols != k {
		return nil, fmt.Errorf("modes: eigensolver returned %d×%d vectors for %d eigenvalues of a %d-dim operator",
			rows, cols, k, op.Dim())
	}

	// The continuous operator is self-adjoint; its spectrum is real. Any
	// imaginary content above tolerance is an assembly or solver defect.
	for i, wi := range w {
		if math.Abs(imag(wi)) > o.ImagTol {
			return nil, fmt.Errorf("%w: eigenvalue %d = %v", ErrComplexEigenpair, i, wi)
		}
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			if math.Abs(imag(v.At(r, c))) > o.ImagTol {
				return nil, fmt.Errorf("%w: eigenvector %d", ErrComplexEigenpair, c)
			}
		}
	}

	wr := make([]float64, k)
	for i, wi := range w {
		wr[i] = real(wi)
	}

	// Descending order: least-negative eigenvalue (largest radius) first.
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return wr[idx[i]] > wr[idx[j]] })

	nullTol := o.NullTol * op.NormInf()
	radii := make([]float64, k)
	shapes := mat.NewDense(rows, k, nil)
	for c, j := range idx {
		lambda := wr[j]
		switch {
		case math.Abs(lambda) <= nullTol:
			// Barotropic null mode: zero eigenvalue, unbounded radius.
			radii[c] = math.Inf(1)
		case lambda > 0:
			return nil, fmt.Errorf("%w: eigenvalue %g", ErrPositiveEigenvalue, lambda)
		default:
			radii[c] = 1 / (math.Sqrt(-lambda) * f0)
		}
		for r := 0; r < rows; r++ {
			shapes.Set(r, c, real(v.At(r, j)))
		}
	}

	faces := make([]float64, len(grid.Faces))
	copy(faces, grid.Faces)

	return &Result{
		Faces:            faces,
		DeformationRadii: radii,
		Modes:            shapes,
	}, nil
}
