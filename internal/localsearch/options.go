// Package localsearch implements the local-search kit (C4): 2-opt, 2-opt*,
// node-shift, adjacent/general swap, reverse-segment, block-insert, and
// single-insertion, each tested with a best-improvement policy and accepted
// only when the result strictly reduces cost and stays capacity/energy
// feasible (spec.md §4.4).
//
// Grounded on the teacher's tsp/two_opt.go: deterministic full-pass scans,
// no RNG in the improving passes themselves, deadline polling on the outer
// caller rather than inside each O(n²) pass.
package localsearch

import "github.com/andromedak2/cevrp/internal/model"

// feasible reports whether nodes forms a capacity- and energy-feasible,
// depot-anchored route against g.
func feasible(g *model.Graph, nodes []string, capacity int, battery float64) bool {
	if len(nodes) < 2 {
		return false
	}
	if !g.IsDepot(nodes[0]) || !g.IsDepot(nodes[len(nodes)-1]) {
		return false
	}
	return g.PathDemand(nodes) <= capacity && g.PathEnergy(nodes) <= battery
}

func reversed(nodes []string, i, j int) []string {
	out := append([]string(nil), nodes...)
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}
	return out
}
