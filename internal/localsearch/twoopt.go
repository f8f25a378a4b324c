package localsearch

import "github.com/andromedak2/cevrp/internal/model"

// TwoOpt runs best-improvement intra-route 2-opt over nodes (spec.md §4.4:
// "for each 1<=i<j<=n-2, reverse the segment [i..j]; keep best
// improvement"). Depot positions 0 and len(nodes)-1 are never touched.
// Returns the improved node sequence and true if any improving move was
// applied; otherwise returns nodes unchanged and false.
func TwoOpt(g *model.Graph, nodes []string, capacity int, battery float64) ([]string, bool) {
	n := len(nodes)
	if n < 5 {
		// Need at least three interior nodes: reversing only two between the
		// depots leaves the (symmetric) route cost unchanged.
		return nodes, false
	}

	baseCost := g.PathCost(nodes)
	bestCost := baseCost
	var bestCandidate []string

	for i := 1; i <= n-3; i++ {
		for j := i + 1; j <= n-2; j++ {
			candidate := reversed(nodes, i, j)
			if !feasible(g, candidate, capacity, battery) {
				continue
			}
			cost := g.PathCost(candidate)
			if cost < bestCost {
				bestCost = cost
				bestCandidate = candidate
			}
		}
	}

	if bestCandidate == nil {
		return nodes, false
	}
	return bestCandidate, true
}
