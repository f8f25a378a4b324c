// Package alns implements the Adaptive Large Neighborhood Search engine
// (C5): adaptively weighted destroy/repair operator selection via a
// Roulette Wheel, Record-to-Record Travel acceptance, and an on-best
// local-search hook (spec.md §4.5).
package alns

import "errors"

// ErrInvalidOperatorPrecondition indicates an operator could not run given
// the current state (e.g. fewer than two routes for a two-route operator).
// No registered operator returns it: an operator whose precondition is not
// met returns its input state unchanged, and the engine scores that outcome
// by cost like any other candidate.
var ErrInvalidOperatorPrecondition = errors.New("alns: operator precondition not met")

// Options configures a single ALNS run (spec.md §4.5, §6 Experiment
// configuration fields alns_iterations/rw_weights/rw_decay/autofit_*).
type Options struct {
	NumIterations int

	// RWWeights are the [s1,s2,s3,s4] bucket scores; every operator weight
	// starts at 1.
	RWWeights [4]float64
	// RWDecay is the exponential weight-update decay factor.
	RWDecay float64

	// StartThreshold and EndThreshold scale f(initial_state) to produce the
	// Record-to-Record Travel threshold's linear decay endpoints.
	StartThreshold float64
	EndThreshold   float64

	// WorstRemovalFraction is the top fraction of candidates WorstRemoval
	// displaces per call (default 0.20).
	WorstRemovalFraction float64

	Seed int64
}

// DefaultOptions returns spec.md §4.5's stated defaults.
func DefaultOptions() Options {
	return Options{
		NumIterations:        1000,
		RWWeights:            [4]float64{25, 5, 1, 0.5},
		RWDecay:              0.8,
		StartThreshold:       0.02,
		EndThreshold:         0,
		WorstRemovalFraction: 0.20,
		Seed:                 0,
	}
}
