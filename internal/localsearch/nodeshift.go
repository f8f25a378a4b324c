package localsearch

import "github.com/andromedak2/cevrp/internal/model"

// NodeShift moves a single customer from src to every possible insertion
// position in dst, keeping the best-improving move that reduces the
// combined cost of the two routes while leaving both feasible (spec.md
// §4.4: "move a single customer from one route to another if it reduces
// combined cost and respects constraints"). Returns the resulting src/dst
// sequences and true if a move was applied.
func NodeShift(g *model.Graph, src, dst []string, capacity int, battery float64) ([]string, []string, bool) {
	if len(src) < 3 {
		return src, dst, false
	}

	baseCost := g.PathCost(src) + g.PathCost(dst)
	bestCost := baseCost
	var bestSrc, bestDst []string

	for i := 1; i < len(src)-1; i++ {
		node := src[i]
		candSrc := append(append([]string(nil), src[:i]...), src[i+1:]...)
		if !feasible(g, candSrc, capacity, battery) {
			continue
		}
		for j := 1; j < len(dst); j++ {
			candDst := make([]string, 0, len(dst)+1)
			candDst = append(candDst, dst[:j]...)
			candDst = append(candDst, node)
			candDst = append(candDst, dst[j:]...)
			if !feasible(g, candDst, capacity, battery) {
				continue
			}
			cost := g.PathCost(candSrc) + g.PathCost(candDst)
			if cost < bestCost {
				bestCost = cost
				bestSrc, bestDst = candSrc, candDst
			}
		}
	}

	if bestSrc == nil {
		return src, dst, false
	}
	return bestSrc, bestDst, true
}
