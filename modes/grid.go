package modes

// Grid is the staggered vertical grid of the discretization.
//
//	~~~~~ Faces[0] == 0, φ[0] ~~~~~
//	----- Centers[0], N2[0] -------
//	----- Faces[1], φ[1] ----------
//	...
//	----- Centers[n-1], N2[n-1] ---
//	~~~~~ Faces[n] == Depth, φ[n] ~
//
// N² lives at centers (the input depths), mode shapes at faces. All
// coordinates are positive downward with the surface at 0.
type Grid struct {
	Centers []float64 // input depths, length n
	Faces   []float64 // surface, midpoints, bottom; length n+1
	DZC     []float64 // center-to-center spacings, length n-1
	DZF     []float64 // face-to-face spacings, length n
	DZTop   float64   // surface to first center
	DZBot   float64   // last center to bottom
	Depth   float64   // resolved total water-column depth
}

// NumCenters returns the number of N² sample points.
func (g *Grid) NumCenters() int { return len(g.Centers) }

// NumFaces returns the number of mode-shape points, NumCenters()+1.
func (g *Grid) NumFaces() int { return len(g.Faces) }

// NewGrid builds the staggered grid from center depths z. depth is the
// total water-column depth; a value ≤ 0 means "infer", extrapolating half
// the last center spacing below the deepest sample.
//
// Errors:
//   - ErrProfileTooShort — fewer than two centers.
//   - ErrNotMonotonic    — z not strictly increasing.
//   - ErrDepthTooShallow — supplied depth at or above the deepest sample.
func NewGrid(z []float64, depth float64) (*Grid, error) {
	n := len(z)
	if n < 2 {
		return nil, ErrProfileTooShort
	}

	// The column coordinate starts at the surface, so the centers must
	// strictly increase from 0; a center at 0 would collapse DZTop.
	if z[0] <= 0 {
		return nil, ErrNotMonotonic
	}

	dzc := make([]float64, n-1)
	for i := 1; i < n; i++ {
		d := z[i] - z[i-1]
		if d <= 0 {
			return nil, ErrNotMonotonic
		}
		dzc[i-1] = d
	}

	if depth <= 0 {
		depth = z[n-1] + dzc[n-2]/2
	} else if depth <= z[n-1] {
		return nil, ErrDepthTooShallow
	}

	faces := make([]float64, n+1)
	faces[0] = 0
	for i := 1; i < n; i++ {
		faces[i] = 0.5 * (z[i-1] + z[i])
	}
	faces[n] = depth

	dzf := make([]float64, n)
	for i := range dzf {
		dzf[i] = faces[i+1] - faces[i]
	}

	return &Grid{
		Centers: z,
		Faces:   faces,
		DZC:     dzc,
		DZF:     dzf,
		DZTop:   z[0],
		DZBot:   depth - z[n-1],
		Depth:   depth,
	}, nil
}
