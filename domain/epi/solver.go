package epi

import "math"

// DefaultSolverIterations is the fixed iteration count for the
// final-size fixed point. The map is a contraction for R0 ≤ 20 and any
// susceptible share in [0,1], so a fixed count converges well past
// float64 precision; keeping it fixed (no tolerance check) makes
// output reproducible across call sites.
const DefaultSolverIterations = 60

// solverSeed is the initial infected fraction that starts the iteration.
const solverSeed = 1e-4

// Solve computes the long-run fraction of susceptibles ultimately
// infected for a well-mixed population, by iterating the final-size
// relation z = 1 − exp(−r0·z·susceptibleShare).
//
// Non-finite or non-positive r0, or a non-positive susceptible share,
// means no outbreak: the result is 0. The result is always in [0,1].
func Solve(r0, susceptibleShare float64) float64 {
	return SolveN(r0, susceptibleShare, DefaultSolverIterations)
}

// SolveN is Solve with an explicit iteration count. Counts below 1 fall
// back to DefaultSolverIterations.
func SolveN(r0, susceptibleShare float64, iterations int) float64 {
	if math.IsNaN(r0) || math.IsInf(r0, 0) || r0 <= 0 {
		return 0
	}
	if math.IsNaN(susceptibleShare) || susceptibleShare <= 0 {
		return 0
	}
	if susceptibleShare > 1 {
		susceptibleShare = 1
	}
	if iterations < 1 {
		iterations = DefaultSolverIterations
	}

	z := solverSeed
	for i := 0; i < iterations; i++ {
		z = 1 - math.Exp(-r0*z*susceptibleShare)
	}

	// Guard against numerical overshoot at extreme r0.
	return clamp01(z)
}
