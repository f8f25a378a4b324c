package operators

import (
	"math/rand"
	"sort"

	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/solution"
)

// RemoveOvercapacityNodes walks each route from the depot, carrying running
// energy reset at stations, and truncates the route just before the first
// edge that would exceed battery B (spec.md §4.6 "remove overcapacity
// nodes"). Displaced non-station customers are pushed to s.Unassigned;
// routes left with fewer than 3 nodes are dissolved, their customers
// displaced too. Despite the operator's name, the truncation boundary is
// energy (B), not cargo capacity (Q) — cargo-capacity overflow cannot occur
// here since MMAS construction already enforces Q per spec.md §4.3; this
// operator exists to repair energy infeasibility introduced by destroy
// operators upstream. See SPEC_FULL.md §5 for the "truncate before overflow
// edge" resolution of spec.md's otherwise-ambiguous naming.
func RemoveOvercapacityNodes(g *model.Graph, s *solution.State) *solution.State {
	out := s.Clone()
	var displaced []string
	var kept []solution.Route

	for _, route := range out.Routes {
		truncated, rest := truncateAtOverflow(g, route.Nodes, g.Instance().Battery)
		displaced = append(displaced, rest...)
		if len(truncated) < 3 {
			displaced = append(displaced, nonStationInterior(g, truncated)...)
			continue
		}
		kept = append(kept, solution.NewRoute(g, truncated))
	}

	out.Routes = kept
	out.Unassigned = append(out.Unassigned, displaced...)
	return out
}

// truncateAtOverflow returns the depot-closed prefix of nodes that stays
// within battery, plus the non-station customers dropped from the
// truncated suffix.
func truncateAtOverflow(g *model.Graph, nodes []string, battery float64) (kept []string, displacedCustomers []string) {
	if len(nodes) < 2 {
		return nodes, nil
	}
	depot := nodes[len(nodes)-1]

	kept = append(kept, nodes[0])
	energy := 0.0
	cut := len(nodes)
	for i := 0; i+1 < len(nodes); i++ {
		edgeEnergy := g.EdgeEnergy(nodes[i], nodes[i+1])
		if energy+edgeEnergy > battery {
			cut = i + 1
			break
		}
		if g.IsStation(nodes[i+1]) || g.IsDepot(nodes[i+1]) {
			energy = 0
		} else {
			energy += edgeEnergy
		}
		kept = append(kept, nodes[i+1])
	}

	if cut == len(nodes) {
		return kept, nil
	}
	for _, key := range nodes[cut:] {
		if !g.IsStation(key) && !g.IsDepot(key) {
			displacedCustomers = append(displacedCustomers, key)
		}
	}
	if !g.IsDepot(kept[len(kept)-1]) {
		kept = append(kept, depot)
	}
	return kept, displacedCustomers
}

func nonStationInterior(g *model.Graph, nodes []string) []string {
	var out []string
	for _, key := range nodes {
		if !g.IsDepot(key) && !g.IsStation(key) {
			out = append(out, key)
		}
	}
	return out
}

// RemoveChargingStation picks uniformly a route containing at least two
// station occurrences, removes one random occurrence, and keeps the change
// only if the route remains energy-feasible (spec.md §4.6 "remove charging
// station"); otherwise the original state is returned unchanged.
func RemoveChargingStation(g *model.Graph, s *solution.State, r *rand.Rand) *solution.State {
	var candidates []int
	for i, route := range s.Routes {
		if countStations(g, route.Nodes) >= 2 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return s
	}

	out := s.Clone()
	idx := candidates[r.Intn(len(candidates))]
	route := out.Routes[idx]

	var stationPositions []int
	for i, key := range route.Nodes {
		if g.IsStation(key) {
			stationPositions = append(stationPositions, i)
		}
	}
	pos := stationPositions[r.Intn(len(stationPositions))]

	candidate := make([]string, 0, len(route.Nodes)-1)
	candidate = append(candidate, route.Nodes[:pos]...)
	candidate = append(candidate, route.Nodes[pos+1:]...)

	newRoute := solution.NewRoute(g, candidate)
	if !newRoute.Feasible {
		return s
	}
	out.Routes[idx] = newRoute
	return out
}

func countStations(g *model.Graph, nodes []string) int {
	n := 0
	for _, key := range nodes {
		if g.IsStation(key) {
			n++
		}
	}
	return n
}

// WorstRemoval computes, for every interior node of every route, the
// savings from removing it (cost_before - cost_after), sorts descending,
// and displaces the top fraction (default 20%, spec.md §4.6 "worst
// removal"). A per-route removal that would break energy feasibility is
// skipped rather than applied.
func WorstRemoval(g *model.Graph, s *solution.State, fraction float64) *solution.State {
	type candidate struct {
		routeIdx, pos int
		savings       float64
	}

	var candidates []candidate
	for ri, route := range s.Routes {
		for pos := 1; pos < len(route.Nodes)-1; pos++ {
			if g.IsStation(route.Nodes[pos]) {
				continue
			}
			before := g.PathCost(route.Nodes)
			without := append(append([]string(nil), route.Nodes[:pos]...), route.Nodes[pos+1:]...)
			after := g.PathCost(without)
			candidates = append(candidates, candidate{ri, pos, before - after})
		}
	}
	if len(candidates) == 0 {
		return s
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].savings > candidates[j].savings
	})

	numRemove := int(float64(len(candidates)) * fraction)
	if numRemove < 1 {
		numRemove = 1
	}
	if numRemove > len(candidates) {
		numRemove = len(candidates)
	}

	// Group chosen removals per route, removing from the highest position
	// down so earlier indices stay valid.
	toRemove := make(map[int][]int)
	for _, c := range candidates[:numRemove] {
		toRemove[c.routeIdx] = append(toRemove[c.routeIdx], c.pos)
	}

	out := s.Clone()
	var displaced []string
	var kept []solution.Route
	for ri, route := range out.Routes {
		positions, has := toRemove[ri]
		if !has {
			kept = append(kept, route)
			continue
		}
		sort.Sort(sort.Reverse(sort.IntSlice(positions)))
		nodes := append([]string(nil), route.Nodes...)
		var removedKeys []string
		for _, pos := range positions {
			removedKeys = append(removedKeys, nodes[pos])
			nodes = append(nodes[:pos], nodes[pos+1:]...)
		}
		if len(nodes) < 3 {
			displaced = append(displaced, nonStationInterior(g, nodes)...)
			displaced = append(displaced, removedKeys...)
			continue
		}
		candidateRoute := solution.NewRoute(g, nodes)
		if !candidateRoute.Feasible {
			// Reject this route's removal: energy feasibility broken.
			kept = append(kept, route)
			continue
		}
		kept = append(kept, candidateRoute)
		displaced = append(displaced, removedKeys...)
	}

	out.Routes = kept
	out.Unassigned = append(out.Unassigned, displaced...)
	return out
}
