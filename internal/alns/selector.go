package alns

import (
	"math/rand"

	"github.com/andromedak2/cevrp/internal/rng"
)

// weightedIndex tracks an adaptively-updated roulette weight per operator
// index (spec.md §4.5 step 5: "w_o <- decay*w_o + (1-decay)*s_picked_bucket").
type weightedIndex struct {
	weights []float64
	decay   float64
}

func newWeightedIndex(n int, initial float64, decay float64) *weightedIndex {
	w := make([]float64, n)
	for i := range w {
		w[i] = initial
	}
	return &weightedIndex{weights: w, decay: decay}
}

// Select performs a roulette-wheel draw over the current weights, returning
// the chosen index.
func (w *weightedIndex) Select(r *rand.Rand) (int, error) {
	choices := make([]rng.Choice[int], len(w.weights))
	var total float64
	for i, x := range w.weights {
		total += x
	}
	for i, x := range w.weights {
		weight := x
		if total > 0 {
			weight = x / total
		}
		choices[i] = rng.Choice[int]{Item: i, Weight: weight}
	}
	return rng.RouletteSelect(choices, r)
}

// Update applies the decay update to the chosen operator's weight using the
// score for the outcome bucket it landed in (spec.md §4.5 step 5).
func (w *weightedIndex) Update(idx int, score float64) {
	w.weights[idx] = w.decay*w.weights[idx] + (1-w.decay)*score
}

// bucket identifies which of the four ALNS outcome buckets a repaired
// state landed in (spec.md §4.5 step 3), in priority order.
type bucket int

const (
	bucketNewBest bucket = iota
	bucketBetterThanCurrent
	bucketAcceptedWorse
	bucketRejected
)

// classify returns the outcome bucket for a candidate objective value given
// the current best and current accepted objective, and whether the RRT
// criterion accepted it.
func classify(candidateCost, bestCost, currentCost float64, accepted bool) bucket {
	switch {
	case candidateCost < bestCost:
		return bucketNewBest
	case candidateCost < currentCost:
		return bucketBetterThanCurrent
	case accepted:
		return bucketAcceptedWorse
	default:
		return bucketRejected
	}
}
