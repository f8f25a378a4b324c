package operators

import (
	"sort"

	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/solution"
)

// insertionSite names a candidate insertion point: an existing route and
// position, or a fresh route.
type insertionSite struct {
	routeIdx int // -1 means "open a fresh route"
	pos      int
	cost     float64
	nodes    []string // the resulting route sequence at this site
}

// feasibleInsertions returns every capacity/energy-feasible insertion site
// for customer across every route in s, plus the fresh-route site, each
// with its resulting incremental cost. Station splicing is applied to each
// candidate before the feasibility check (spec.md §4.6 "inserting station
// splices when necessary").
func feasibleInsertions(g *model.Graph, s *solution.State, customer string) []insertionSite {
	var sites []insertionSite
	capacity := g.Instance().Capacity
	battery := g.Instance().Battery

	for ri, route := range s.Routes {
		if route.TotalDemand+g.Demand(customer) > capacity {
			continue
		}
		for pos := 1; pos < len(route.Nodes); pos++ {
			candidate := make([]string, 0, len(route.Nodes)+1)
			candidate = append(candidate, route.Nodes[:pos]...)
			candidate = append(candidate, customer)
			candidate = append(candidate, route.Nodes[pos:]...)

			spliced, ok := SmartReinsertion(g, candidate, battery)
			if !ok {
				continue
			}
			rt := solution.NewRoute(g, spliced)
			if !rt.Feasible {
				continue
			}
			sites = append(sites, insertionSite{
				routeIdx: ri,
				pos:      pos,
				cost:     rt.TotalCost - route.TotalCost,
				nodes:    spliced,
			})
		}
	}

	depot := g.Instance().DepotKey()
	fresh := []string{depot, customer, depot}
	spliced, ok := SmartReinsertion(g, fresh, battery)
	if ok {
		rt := solution.NewRoute(g, spliced)
		if rt.Feasible {
			sites = append(sites, insertionSite{routeIdx: -1, cost: rt.TotalCost, nodes: spliced})
		}
	}

	return sites
}

func applySite(s *solution.State, site insertionSite) {
	if site.routeIdx == -1 {
		s.Routes = append(s.Routes, solution.Route{Nodes: site.nodes})
		return
	}
	s.Routes[site.routeIdx].Nodes = site.nodes
}

// GreedyInsertion repairs s by, for each unassigned customer, accepting the
// lowest-incremental-cost feasible insertion site; if none exists the
// customer stays unassigned (spec.md §4.6 "greedy insertion").
func GreedyInsertion(g *model.Graph, s *solution.State) *solution.State {
	out := s.Clone()
	pending := out.Unassigned
	out.Unassigned = nil

	for _, customer := range pending {
		sites := feasibleInsertions(g, out, customer)
		if len(sites) == 0 {
			out.Unassigned = append(out.Unassigned, customer)
			continue
		}
		best := sites[0]
		for _, site := range sites[1:] {
			if site.cost < best.cost {
				best = site
			}
		}
		applySite(out, best)
		recomputeAll(g, out)
	}

	return out
}

// RegretKInsertion implements k=2 regret insertion (spec.md §4.6
// "regret-k insertion"): repeatedly computes, for every still-unassigned
// customer, its two best feasible insertion costs; the customer with the
// largest regret (difference between the two) is inserted at its best
// site, ties broken by lowest best cost. Iterates until no unassigned
// customer has a feasible insertion.
func RegretKInsertion(g *model.Graph, s *solution.State) *solution.State {
	out := s.Clone()
	pending := append([]string(nil), out.Unassigned...)
	out.Unassigned = nil

	for len(pending) > 0 {
		type scored struct {
			customer string
			best     insertionSite
			regret   float64
			ok       bool
		}
		var candidates []scored
		for _, customer := range pending {
			sites := feasibleInsertions(g, out, customer)
			if len(sites) == 0 {
				candidates = append(candidates, scored{customer: customer})
				continue
			}
			sort.Slice(sites, func(i, j int) bool { return sites[i].cost < sites[j].cost })
			regret := 0.0
			if len(sites) >= 2 {
				regret = sites[1].cost - sites[0].cost
			}
			candidates = append(candidates, scored{customer: customer, best: sites[0], regret: regret, ok: true})
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].regret != candidates[j].regret {
				return candidates[i].regret > candidates[j].regret
			}
			return candidates[i].best.cost < candidates[j].best.cost
		})

		progressed := false
		var stillPending []string
		for _, c := range candidates {
			if !c.ok {
				out.Unassigned = append(out.Unassigned, c.customer)
				continue
			}
			if progressed {
				stillPending = append(stillPending, c.customer)
				continue
			}
			applySite(out, c.best)
			recomputeAll(g, out)
			progressed = true
		}
		pending = stillPending
		if !progressed {
			break
		}
	}

	return out
}

// BestFeasibleInsertion repairs s with a first-feasible-position policy:
// for each unassigned customer, scan routes and positions in a fixed order
// and accept the first capacity- and energy-feasible position found
// (spec.md §4.6 "best-feasible insertion"). Insertion before the first
// depot is forbidden; immediately after the first depot or immediately
// before the last depot is permitted.
func BestFeasibleInsertion(g *model.Graph, s *solution.State) *solution.State {
	out := s.Clone()
	pending := out.Unassigned
	out.Unassigned = nil

	capacity := g.Instance().Capacity
	battery := g.Instance().Battery

	for _, customer := range pending {
		placed := false
		for ri := range out.Routes {
			route := out.Routes[ri]
			if route.TotalDemand+g.Demand(customer) > capacity {
				continue
			}
			for pos := 1; pos < len(route.Nodes); pos++ {
				candidate := make([]string, 0, len(route.Nodes)+1)
				candidate = append(candidate, route.Nodes[:pos]...)
				candidate = append(candidate, customer)
				candidate = append(candidate, route.Nodes[pos:]...)
				spliced, ok := SmartReinsertion(g, candidate, battery)
				if !ok {
					continue
				}
				rt := solution.NewRoute(g, spliced)
				if !rt.Feasible {
					continue
				}
				out.Routes[ri] = rt
				placed = true
				break
			}
			if placed {
				break
			}
		}
		if !placed {
			depot := g.Instance().DepotKey()
			fresh := []string{depot, customer, depot}
			spliced, ok := SmartReinsertion(g, fresh, battery)
			if ok {
				rt := solution.NewRoute(g, spliced)
				if rt.Feasible {
					out.Routes = append(out.Routes, rt)
					placed = true
				}
			}
		}
		if !placed {
			out.Unassigned = append(out.Unassigned, customer)
		}
	}

	return out
}

func recomputeAll(g *model.Graph, s *solution.State) {
	for i := range s.Routes {
		solution.Recompute(g, &s.Routes[i], g.Instance().Capacity, g.Instance().Battery)
	}
}
