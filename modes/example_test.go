package modes_test

import (
	"fmt"

	"github.com/roxyboy/oceanmodes/modes"
)

// ExampleSolve computes the three gravest modes of a uniformly
// stratified 100 m column sampled every 20 m.
//
// Scenario:
//
//	N² = 1e-4 s⁻² at every level (N = 0.01 s⁻¹), f₀ = 1e-4 s⁻¹.
//	The leading mode is barotropic (flat, unbounded radius); the first
//	baroclinic radius for this discretization is ≈ 3.2 km.
func ExampleSolve() {
	z := []float64{10, 30, 50, 70, 90}
	n2 := []float64{1e-4, 1e-4, 1e-4, 1e-4, 1e-4}

	opts := modes.DefaultOptions()
	opts.Depth = 100 // meters; bottom known from bathymetry
	opts.NumModes = 3

	res, err := modes.Solve(z, n2, 1e-4, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("faces:", res.Faces)
	fmt.Println("modes:", res.NumModes())
	fmt.Printf("Ld1: %.0f m\n", res.DeformationRadii[1])
	// Output:
	// faces: [0 20 40 60 80 100]
	// modes: 3
	// Ld1: 3236 m
}
