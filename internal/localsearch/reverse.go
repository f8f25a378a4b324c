package localsearch

import "github.com/andromedak2/cevrp/internal/model"

// ReverseSegment reverses every interior segment [i..j] of nodes,
// best-improvement (spec.md §4.4 "reverse-segment"). This is the same move
// family as TwoOpt but kept as an independently named operator so the ALNS
// on-best hook (spec.md §4.5 step 6) can pick it as a distinct candidate.
func ReverseSegment(g *model.Graph, nodes []string, capacity int, battery float64) ([]string, bool) {
	return TwoOpt(g, nodes, capacity, battery)
}

// BlockInsert relocates a contiguous block of blockLen interior nodes from
// src to every insertion position in dst, best-improvement (spec.md §4.4
// "block-insert").
func BlockInsert(g *model.Graph, src, dst []string, blockLen, capacity int, battery float64) ([]string, []string, bool) {
	n := len(src)
	if blockLen < 1 || n < blockLen+2 {
		return src, dst, false
	}

	baseCost := g.PathCost(src) + g.PathCost(dst)
	bestCost := baseCost
	var bestSrc, bestDst []string

	for start := 1; start+blockLen <= n-1; start++ {
		block := append([]string(nil), src[start:start+blockLen]...)
		candSrc := make([]string, 0, n-blockLen)
		candSrc = append(candSrc, src[:start]...)
		candSrc = append(candSrc, src[start+blockLen:]...)
		if !feasible(g, candSrc, capacity, battery) {
			continue
		}
		for j := 1; j < len(dst); j++ {
			candDst := make([]string, 0, len(dst)+blockLen)
			candDst = append(candDst, dst[:j]...)
			candDst = append(candDst, block...)
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

// SingleInsertion removes one customer from src and reinserts it at its
// single best-improving position anywhere in dst, including the option of
// leaving src/dst unchanged (spec.md §4.4 "single-insertion"). It runs the
// same search as NodeShift and is kept as a separately named move for the
// ALNS on-best hook.
func SingleInsertion(g *model.Graph, src, dst []string, capacity int, battery float64) ([]string, []string, bool) {
	return NodeShift(g, src, dst, capacity, battery)
}
