package localsearch

import (
	"math/rand"

	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/solution"
)

// operatorKind enumerates the named C4 operators the ALNS on-best hook
// (spec.md §4.5 step 6) chooses between uniformly at random.
type operatorKind int

const (
	opTwoOpt operatorKind = iota
	opReverseSegment
	opAdjacentSwap
	opSwap
	opNodeShift
	opTwoOptStar
	opBlockInsert
	numOperators
)

// ApplyRandom runs one randomly chosen C4 operator against s and returns the
// resulting state. Intra-route operators act on one randomly chosen route;
// inter-route operators act on two distinct randomly chosen routes. If the
// chosen operator finds no improving move, or s has too few routes for an
// inter-route operator, s is returned unchanged.
func ApplyRandom(g *model.Graph, s *solution.State, capacity int, battery float64, r *rand.Rand) *solution.State {
	if len(s.Routes) == 0 {
		return s
	}
	kind := operatorKind(r.Intn(int(numOperators)))
	out := s.Clone()

	switch kind {
	case opTwoOpt:
		i := r.Intn(len(out.Routes))
		nodes, ok := TwoOpt(g, out.Routes[i].Nodes, capacity, battery)
		if ok {
			applyNodes(g, out, i, nodes)
		}
	case opReverseSegment:
		i := r.Intn(len(out.Routes))
		nodes, ok := ReverseSegment(g, out.Routes[i].Nodes, capacity, battery)
		if ok {
			applyNodes(g, out, i, nodes)
		}
	case opAdjacentSwap:
		i := r.Intn(len(out.Routes))
		nodes, ok := AdjacentSwap(g, out.Routes[i].Nodes, capacity, battery)
		if ok {
			applyNodes(g, out, i, nodes)
		}
	case opSwap:
		i := r.Intn(len(out.Routes))
		nodes, ok := Swap(g, out.Routes[i].Nodes, capacity, battery)
		if ok {
			applyNodes(g, out, i, nodes)
		}
	case opNodeShift:
		i, j, ok := distinctPair(out, r)
		if !ok {
			return out
		}
		src, dst, applied := NodeShift(g, out.Routes[i].Nodes, out.Routes[j].Nodes, capacity, battery)
		if applied {
			applyNodes(g, out, i, src)
			applyNodes(g, out, j, dst)
		}
	case opTwoOptStar:
		i, j, ok := distinctPair(out, r)
		if !ok {
			return out
		}
		a, b, applied := TwoOptStar(g, out.Routes[i].Nodes, out.Routes[j].Nodes, capacity, battery)
		if applied {
			applyNodes(g, out, i, a)
			applyNodes(g, out, j, b)
		}
	case opBlockInsert:
		i, j, ok := distinctPair(out, r)
		if !ok {
			return out
		}
		src, dst, applied := BlockInsert(g, out.Routes[i].Nodes, out.Routes[j].Nodes, 2, capacity, battery)
		if applied {
			applyNodes(g, out, i, src)
			applyNodes(g, out, j, dst)
		}
	}

	return out
}

func applyNodes(g *model.Graph, s *solution.State, idx int, nodes []string) {
	s.Routes[idx] = solution.NewRoute(g, nodes)
}

func distinctPair(s *solution.State, r *rand.Rand) (int, int, bool) {
	if len(s.Routes) < 2 {
		return 0, 0, false
	}
	i := r.Intn(len(s.Routes))
	j := r.Intn(len(s.Routes) - 1)
	if j >= i {
		j++
	}
	return i, j, true
}
