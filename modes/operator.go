package modes

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operator is the discretized form of d/dz( 1/N² d/dz ) with zero-flux
// (Neumann) conditions at surface and bottom. It is tridiagonal and
// stored as three diagonals indexed by row: for row i, lower[i] holds
// A(i,i-1), diag[i] holds A(i,i), upper[i] holds A(i,i+1); lower[0] and
// upper[dim-1] are unused.
//
// The operator acts on face-point values; its dimension is
// Grid.NumFaces() = n centers + 1.
type Operator struct {
	lower []float64
	diag  []float64
	upper []float64
}

// NewOperator assembles the operator for grid g and squared buoyancy
// frequency n2 sampled at the grid centers.
//
// Row construction (m = dim = len(n2)+1):
//
//	row 0:        [-a, a]        a = 1/(DZF[0]·N2[0]·DZTop)
//	row 0<i<m-1:  [a, -(a+c), c] a = 1/(DZF[i-1]·N2[i-1]·DZC[i-1])
//	                             c = 1/(DZF[i]·N2[i]·DZC[i-1])
//	row m-1:      [b, -b]        b = 1/(DZF[m-2]·N2[m-2]·DZBot)
//
// The boundary rows encode a zero-flux condition: the first derivative
// vanishes just outside the surface and bottom faces.
//
// Errors:
//   - ErrLengthMismatch — len(n2) != g.NumCenters().
//   - ErrInvalidN2      — n2 contains NaN, ±Inf, or zero, or the
//     coefficients otherwise fail to come out finite.
func NewOperator(g *Grid, n2 []float64) (*Operator, error) {
	n := g.NumCenters()
	if len(n2) != n {
		return nil, ErrLengthMismatch
	}

	// Every coefficient divides by an N2 sample; an Inf sample would slip
	// through a scan of the assembled rows as a clean 1/Inf = 0, so the
	// inputs are checked directly.
	for _, v := range n2 {
		if !isFinite(v) || v == 0 {
			return nil, ErrInvalidN2
		}
	}

	op := &Operator{
		lower: make([]float64, n+1),
		diag:  make([]float64, n+1),
		upper: make([]float64, n+1),
	}

	a := 1 / (g.DZF[0] * n2[0] * g.DZTop)
	op.diag[0], op.upper[0] = -a, a

	for i := 1; i < n; i++ {
		a = 1 / (g.DZF[i-1] * n2[i-1] * g.DZC[i-1])
		c := 1 / (g.DZF[i] * n2[i] * g.DZC[i-1])
		op.lower[i], op.diag[i], op.upper[i] = a, -(a + c), c
	}

	b := 1 / (g.DZF[n-1] * n2[n-1] * g.DZBot)
	op.lower[n], op.diag[n] = b, -b

	for i := 0; i <= n; i++ {
		if !isFinite(op.lower[i]) || !isFinite(op.diag[i]) || !isFinite(op.upper[i]) {
			return nil, ErrInvalidN2
		}
	}

	return op, nil
}

// Dim returns the operator dimension (number of face points).
func (op *Operator) Dim() int { return len(op.diag) }

// At returns the matrix entry at (i, j); entries off the tridiagonal band
// are zero. Indices outside [0, Dim) panic, as with any matrix access.
func (op *Operator) At(i, j int) float64 {
	m := op.Dim()
	if i < 0 || i >= m || j < 0 || j >= m {
		panic("modes: operator index out of range")
	}
	switch j - i {
	case -1:
		return op.lower[i]
	case 0:
		return op.diag[i]
	case 1:
		return op.upper[i]
	default:
		return 0
	}
}

// Dense exports the operator as a dense matrix for eigensolvers.
func (op *Operator) Dense() *mat.Dense {
	m := op.Dim()
	d := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		if i > 0 {
			d.Set(i, i-1, op.lower[i])
		}
		d.Set(i, i, op.diag[i])
		if i < m-1 {
			d.Set(i, i+1, op.upper[i])
		}
	}

	return d
}

// NormInf returns the infinity norm (maximum absolute row sum), used to
// scale the null-mode tolerance.
func (op *Operator) NormInf() float64 {
	norm := 0.0
	for i := range op.diag {
		s := math.Abs(op.lower[i]) + math.Abs(op.diag[i]) + math.Abs(op.upper[i])
		if s > norm {
			norm = s
		}
	}

	return norm
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
