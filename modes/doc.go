// Package modes computes baroclinic neutral modes and deformation radii
// from a profile of squared buoyancy frequency N².
//
// Solve discretizes the Sturm-Liouville eigenvalue problem
//
//	d/dz( f₀²/N² dφ/dz ) = -1/Ld² φ,   dφ/dz = 0 at top and bottom,
//
// on a staggered vertical grid: N² lives at cell centers (the input
// depths), the mode shapes φ at cell faces (surface, midpoints between
// centers, bottom). The resulting (n+1)×(n+1) tridiagonal operator is
// handed to an EigenSolver, which returns the eigenpairs of smallest
// magnitude — the branch carrying the largest deformation radii.
//
// The package provides:
//
//   - NewGrid — build the staggered vertical grid from center depths.
//   - NewOperator — assemble the discretized tridiagonal operator.
//   - Solve — full pipeline: grid, operator, eigen extraction, reality
//     check, descending sort, and scaling of eigenvalues into radii
//     Ld = (-λ)^(-1/2)/f₀.
//   - EigenSolver — the pluggable eigen-extraction boundary, with a
//     gonum-backed default (GonumSolver).
//
// Eigenvalues must come out real (the continuous operator is
// self-adjoint) and negative; the zero eigenvalue of the barotropic null
// mode is snapped to exactly zero and reported as an infinite
// deformation radius. Anything else is surfaced as an error, never
// coerced.
//
// Inputs with NaN gaps from topography should pass through
// profile.Truncate first; Solve rejects non-finite N².
package modes
