package localsearch

import "github.com/andromedak2/cevrp/internal/model"

// AdjacentSwap swaps every pair of consecutive interior nodes in nodes,
// best-improvement (spec.md §4.4 "adjacent swap"). Depot positions are
// never touched.
func AdjacentSwap(g *model.Graph, nodes []string, capacity int, battery float64) ([]string, bool) {
	n := len(nodes)
	if n < 4 {
		return nodes, false
	}

	bestCost := g.PathCost(nodes)
	var best []string

	for i := 1; i < n-2; i++ {
		candidate := append([]string(nil), nodes...)
		candidate[i], candidate[i+1] = candidate[i+1], candidate[i]
		if !feasible(g, candidate, capacity, battery) {
			continue
		}
		cost := g.PathCost(candidate)
		if cost < bestCost {
			bestCost = cost
			best = candidate
		}
	}

	if best == nil {
		return nodes, false
	}
	return best, true
}

// Swap exchanges every pair of (not necessarily adjacent) interior nodes in
// nodes, best-improvement (spec.md §4.4 "general swap").
func Swap(g *model.Graph, nodes []string, capacity int, battery float64) ([]string, bool) {
	n := len(nodes)
	if n < 4 {
		return nodes, false
	}

	bestCost := g.PathCost(nodes)
	var best []string

	for i := 1; i < n-1; i++ {
		for j := i + 1; j < n-1; j++ {
			candidate := append([]string(nil), nodes...)
			candidate[i], candidate[j] = candidate[j], candidate[i]
			if !feasible(g, candidate, capacity, battery) {
				continue
			}
			cost := g.PathCost(candidate)
			if cost < bestCost {
				bestCost = cost
				best = candidate
			}
		}
	}

	if best == nil {
		return nodes, false
	}
	return best, true
}
