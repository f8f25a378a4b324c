package mmas

import "math"

// Desirability computes φ^α · (1/c)^β, the MMAS transition desirability of
// an edge with pheromone level phi and cost c. An edge of cost 0
// contributes 0 desirability (spec.md §4.3 step 3 and §8 boundary:
// "cost(u,v)=0 ⇒ edge contributes 0 desirability, never divide by zero").
func Desirability(phi, cost, alpha, beta float64) float64 {
	if cost == 0 {
		return 0
	}
	return math.Pow(phi, alpha) * math.Pow(1/cost, beta)
}

// TauMax computes τ_max = 1 / ((1-ρ)·C_best) (spec.md §4.3).
func TauMax(rho, bestCost float64) float64 {
	return 1 / ((1 - rho) * bestCost)
}

// TauMinMax computes τ_min and τ_max for n nodes, evaporation rho, current
// best cost, and root parameter pr. ok is false when n<=2, the degenerate
// case the τ_min formula's (n/2-1) denominator cannot handle (an instance
// with at most one non-depot node has no pheromone-guided decision to
// make); callers should skip clamping in that case. See DESIGN.md for the
// rationale.
func TauMinMax(rho, bestCost float64, n int, pr float64) (tauMin, tauMax float64, ok bool) {
	tauMax = TauMax(rho, bestCost)
	if n <= 2 {
		return 0, tauMax, false
	}
	r := math.Pow(pr, 1/float64(n))
	numerator := 1 - (1 / r)
	denominator := float64(n)/2 - 1
	tauMin = tauMax * (numerator / denominator) * (1 / r)
	return tauMin, tauMax, true
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// UpdatePheromone computes τ' = clamp(ρ·τ + 1/C_best, τ_min, τ_max)
// (spec.md §4.3). When clamp is disabled (n<=2), the raw updated value is
// returned unclamped.
func UpdatePheromone(rho, tau, bestCost, tauMin, tauMax float64, clamp bool) float64 {
	updated := rho*tau + 1/bestCost
	if !clamp {
		return updated
	}
	return Clamp(updated, tauMin, tauMax)
}
