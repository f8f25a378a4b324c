package rng

import (
	"errors"
	"math/rand"
	"sort"
)

// ErrNumericalDegenerate indicates a roulette wheel's cumulative probability
// never exceeded the random draw — impossible if probabilities are properly
// normalized, so this signals a logic error upstream (spec.md §7).
var ErrNumericalDegenerate = errors.New("rng: cumulative probability never exceeded draw")

// Choice pairs a candidate item with its selection weight.
type Choice[T any] struct {
	Item   T
	Weight float64
}

// RouletteSelect performs fitness-proportionate selection over choices
// (spec.md §4.3 step 4): candidates are sorted by descending weight (ties
// keep their input relative order, via a stable sort, for determinism),
// a uniform draw u in [0,1) is taken from r, and the first candidate whose
// cumulative weight strictly exceeds u is returned. choices' weights must
// already sum to ~1; RouletteSelect does not renormalize.
func RouletteSelect[T any](choices []Choice[T], r *rand.Rand) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, ErrNumericalDegenerate
	}

	ordered := make([]Choice[T], len(choices))
	copy(ordered, choices)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Weight > ordered[j].Weight
	})

	pick := r.Float64()
	var cum float64
	for _, c := range ordered {
		cum += c.Weight
		if cum > pick {
			return c.Item, nil
		}
	}
	return zero, ErrNumericalDegenerate
}
