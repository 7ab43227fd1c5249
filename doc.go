// Package oceanmodes computes baroclinic neutral (vertical) modes and
// deformation radii from a water-column stratification profile.
//
// 🌊 What are neutral modes?
//
//	Given a profile of squared buoyancy frequency N²(z) and a Coriolis
//	parameter f₀, the vertical structure of quasi-geostrophic motion is
//	governed by the Sturm-Liouville problem
//
//	    d/dz( f₀²/N² dφ/dz ) = -1/Ld² φ
//
//	with zero-flux conditions at surface and bottom. Its eigenfunctions
//	are the neutral modes φₖ and its eigenvalues the inverse squared
//	deformation radii Ld — the horizontal scales at which rotation and
//	stratification balance.
//
// The module is organized in two leaf packages plus this facade:
//
//	profile/ — validation and topography truncation of (z, N²) casts
//	modes/   — staggered-grid discretization, operator assembly, eigen
//	           extraction and scaling into deformation radii
//
// NeutralModes composes the two: truncate the cast above topography,
// then solve on the valid region.
//
// Quick example:
//
//	z := []float64{10, 30, 50, 70, 90}            // meters, surface at 0
//	n2 := []float64{1e-4, 1e-4, 1e-4, 1e-4, 1e-4} // s⁻²
//	res, err := oceanmodes.NeutralModes(z, n2, 1e-4, nil)
//	if err != nil {
//	  // handle validation or numerical-integrity failure
//	}
//	fmt.Println(res.Faces, res.DeformationRadii)
//
// The computation is stateless and synchronous; concurrent calls with
// independent profiles are safe.
package oceanmodes
