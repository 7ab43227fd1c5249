package modes_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roxyboy/oceanmodes/modes"
)

// TestGonumSolver_Residual verifies every returned pair satisfies
// L·v = λ·v to numerical precision.
func TestGonumSolver_Residual(t *testing.T) {
	op := uniformOperator(t)
	m := op.Dim()

	w, v, err := modes.GonumSolver{}.Eigen(op, m)
	require.NoError(t, err)
	require.Len(t, w, m)

	for c := 0; c < m; c++ {
		for i := 0; i < m; i++ {
			var sum complex128
			for j := 0; j < m; j++ {
				sum += complex(op.At(i, j), 0) * v.At(j, c)
			}
			res := sum - w[c]*v.At(i, c)
			assert.InDelta(t, 0, cmplx.Abs(res), 1e-10*op.NormInf(),
				"residual of pair %d at row %d", c, i)
		}
	}
}

// TestGonumSolver_SmallestMagnitude verifies that asking for fewer pairs
// than the dimension keeps the eigenvalues closest to zero. The uniform
// fixture has spectrum 50·(cos(kπ/5)−1), k=0..5, so the two smallest
// magnitudes are 0 and ≈ −9.5492.
func TestGonumSolver_SmallestMagnitude(t *testing.T) {
	op := uniformOperator(t)

	w, v, err := modes.GonumSolver{}.Eigen(op, 2)
	require.NoError(t, err)
	require.Len(t, w, 2)

	rows, cols := v.Dims()
	assert.Equal(t, op.Dim(), rows)
	assert.Equal(t, 2, cols)

	mags := []float64{cmplx.Abs(w[0]), cmplx.Abs(w[1])}
	assert.InDelta(t, 0, mags[0], 1e-10, "null mode is closest to zero")
	assert.InDelta(t, 9.5492, mags[1], 1e-3, "gravest baroclinic eigenvalue")
}

// TestGonumSolver_ClampsK verifies out-of-range pair counts are clamped
// to the operator dimension.
func TestGonumSolver_ClampsK(t *testing.T) {
	op := uniformOperator(t)

	w, _, err := modes.GonumSolver{}.Eigen(op, 100)
	require.NoError(t, err)
	assert.Len(t, w, op.Dim(), "k above dim clamps down")

	w, _, err = modes.GonumSolver{}.Eigen(op, 0)
	require.NoError(t, err)
	assert.Len(t, w, 1, "k below 1 clamps up")
}
