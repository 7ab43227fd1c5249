package modes

import (
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// EigenSolver extracts eigenpairs from the discretized operator. Eigen
// returns the k eigenvalues closest to zero in magnitude together with
// their right eigenvectors, one column per eigenvalue, in no particular
// order. Implementations must be safe for concurrent use with
// independent operators.
//
// Eigenvalues and eigenvectors are returned complex so the caller can
// perform the reality check itself; for this operator any imaginary
// content signals a defect, and deciding that is the solver pipeline's
// job, not the extractor's.
type EigenSolver interface {
	Eigen(op *Operator, k int) (values []complex128, vectors *mat.CDense, err error)
}

// GonumSolver extracts eigenpairs with gonum's dense QR eigendecomposition
// and keeps the k of smallest magnitude. It is stateless; the zero value
// is ready to use and safe for concurrent calls.
//
// A dense factorization is O(m³), which is comfortably cheap at the
// dimensions of a water-column profile (tens to a few thousand levels).
type GonumSolver struct{}

// Eigen implements EigenSolver. k is clamped to [1, op.Dim()].
func (GonumSolver) Eigen(op *Operator, k int) ([]complex128, *mat.CDense, error) {
	m := op.Dim()
	if k < 1 {
		k = 1
	}
	if k > m {
		k = m
	}

	var eig mat.Eigen
	if ok := eig.Factorize(op.Dense(), mat.EigenRight); !ok {
		return nil, nil, ErrEigenFailed
	}

	values := eig.Values(nil)
	vectors := mat.NewCDense(m, m, nil)
	eig.VectorsTo(vectors)

	// Keep the k eigenvalues closest to zero; ties broken by index for
	// determinism.
	idx := make([]int, m)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return cmplx.Abs(values[idx[i]]) < cmplx.Abs(values[idx[j]])
	})

	outVals := make([]complex128, k)
	outVecs := mat.NewCDense(m, k, nil)
	for c := 0; c < k; c++ {
		j := idx[c]
		outVals[c] = values[j]
		for r := 0; r < m; r++ {
			outVecs.Set(r, c, vectors.At(r, j))
		}
	}

	return outVals, outVecs, nil
}
