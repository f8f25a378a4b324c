package localsearch

import "github.com/andromedak2/cevrp/internal/model"

// TwoOptStar runs best-improvement inter-route 2-opt* over a pair of routes
// (spec.md §4.4): for every interior cut i in r1 and j in r2, swap tails —
// r1' = r1[:i]+r2[j:], r2' = r2[:j]+r1[i:] — preserving depot anchoring.
// Accepts the joint move only if joint cost strictly decreases and both
// resulting routes stay capacity/energy feasible. Returns the two candidate
// sequences and true if an improving move was found, else the inputs
// unchanged and false.
func TwoOptStar(g *model.Graph, r1, r2 []string, capacity int, battery float64) ([]string, []string, bool) {
	n1, n2 := len(r1), len(r2)
	if n1 < 3 || n2 < 3 {
		return r1, r2, false
	}

	baseCost := g.PathCost(r1) + g.PathCost(r2)
	bestCost := baseCost
	var bestA, bestB []string

	for i := 1; i < n1-1; i++ {
		for j := 1; j < n2-1; j++ {
			candA := concat(r1[:i], r2[j:])
			candB := concat(r2[:j], r1[i:])
			if !feasible(g, candA, capacity, battery) || !feasible(g, candB, capacity, battery) {
				continue
			}
			cost := g.PathCost(candA) + g.PathCost(candB)
			if cost < bestCost {
				bestCost = cost
				bestA, bestB = candA, candB
			}
		}
	}

	if bestA == nil {
		return r1, r2, false
	}
	return bestA, bestB, true
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
