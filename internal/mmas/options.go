// Package mmas implements the Max-Min Ant System constructor (C3): ants
// build capacity-feasible, customer-only routes probabilistically, and
// pheromones are clamped to [τ_min, τ_max] after every iteration
// (spec.md §4.3).
package mmas

import (
	"errors"
	"time"
)

// Sentinel errors for the mmas package.
var (
	// ErrNoSolutionFound indicates no ant in any iteration reached full
	// customer coverage with capacity-feasible routes (spec.md §7). Run does
	// not cross-check the stored best against a second-best route set.
	ErrNoSolutionFound = errors.New("mmas: no solution found")

	// ErrNumericalDegenerate mirrors rng.ErrNumericalDegenerate at the
	// package boundary. Run does not return it: a failed roulette draw
	// during an ant's walk closes that ant's current route instead.
	ErrNumericalDegenerate = errors.New("mmas: roulette wheel cumulative probability never exceeded draw")
)

// Options configures a single MMAS construction run.
type Options struct {
	// NumAnts is the number of ants per iteration.
	NumAnts int
	// MaxAntSteps bounds the number of steps a single ant may take before
	// being abandoned mid-walk.
	MaxAntSteps int
	// NumIterations is the maximum number of MMAS iterations.
	NumIterations int
	// MaxIterationImprovement stops the run after this many consecutive
	// iterations without an improvement in the best cost.
	MaxIterationImprovement int

	// Alpha is the pheromone influence exponent.
	Alpha float64
	// Beta is the edge-cost influence exponent.
	Beta float64
	// Rho is the pheromone evaporation/persistence coefficient (0,1).
	Rho float64
	// PR is the τ_min root parameter (default 0.05, spec.md §4.3).
	PR float64

	// StopTime, if non-zero, is an absolute wall-clock deadline; the
	// constructor polls it at iteration boundaries only (spec.md §5).
	StopTime time.Time

	// Seed seeds the deterministic RNG for this run.
	Seed int64
}

// DefaultOptions returns conservative, deterministic defaults.
func DefaultOptions() Options {
	return Options{
		NumAnts:                 20,
		MaxAntSteps:             500,
		NumIterations:           200,
		MaxIterationImprovement: 50,
		Alpha:                   0.7,
		Beta:                    0.3,
		Rho:                     0.98,
		PR:                      0.05,
		Seed:                    0,
	}
}
