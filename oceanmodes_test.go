package oceanmodes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roxyboy/oceanmodes"
	"github.com/roxyboy/oceanmodes/modes"
	"github.com/roxyboy/oceanmodes/profile"
)

// TestNeutralModes_TruncatesBeforeSolving verifies the composed entry
// point matches a manual Truncate + Solve on a cast with a topography
// tail.
func TestNeutralModes_TruncatesBeforeSolving(t *testing.T) {
	nan := math.NaN()
	z := []float64{10, 30, 50, 70, 90}
	n2 := []float64{1e-4, 1e-4, 1e-4, nan, nan}

	composed, err := oceanmodes.NeutralModes(z, n2, 1e-4, nil)
	require.NoError(t, err)

	zt, n2t, err := profile.Truncate(z, n2)
	require.NoError(t, err)
	manual, err := modes.Solve(zt, n2t, 1e-4, nil)
	require.NoError(t, err)

	assert.Equal(t, manual.Faces, composed.Faces)
	require.Equal(t, manual.NumModes(), composed.NumModes())
	for i := range manual.DeformationRadii {
		if math.IsInf(manual.DeformationRadii[i], 1) {
			assert.True(t, math.IsInf(composed.DeformationRadii[i], 1), "mode %d", i)

			continue
		}
		assert.InDelta(t, manual.DeformationRadii[i], composed.DeformationRadii[i], 1e-9, "mode %d", i)
	}
}

// TestNeutralModes_CleanProfile verifies a cast without topography flows
// through untouched: four faces for three centers, inferred depth.
func TestNeutralModes_CleanProfile(t *testing.T) {
	res, err := oceanmodes.NeutralModes(
		[]float64{10, 30, 50},
		[]float64{1e-4, 1e-4, 1e-4},
		1e-4, nil,
	)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 20, 40, 60}, res.Faces, "inferred depth 50+10")
	assert.Equal(t, 4, res.NumModes())
}

// TestNeutralModes_MaskError verifies truncation failures propagate
// unchanged.
func TestNeutralModes_MaskError(t *testing.T) {
	nan := math.NaN()
	_, err := oceanmodes.NeutralModes(
		[]float64{10, 30, 50},
		[]float64{1e-4, nan, 1e-4},
		1e-4, nil,
	)
	assert.ErrorIs(t, err, profile.ErrMaskNotMonotonic)
}

// TestNeutralModes_TruncatedTooShort verifies a cast whose valid region
// shrinks below two samples fails with the solver's sentinel.
func TestNeutralModes_TruncatedTooShort(t *testing.T) {
	nan := math.NaN()
	_, err := oceanmodes.NeutralModes(
		[]float64{10, 30, 50},
		[]float64{1e-4, nan, nan},
		1e-4, nil,
	)
	assert.ErrorIs(t, err, modes.ErrProfileTooShort)
}
