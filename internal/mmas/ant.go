package mmas

import (
	"math/rand"

	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/rng"
)

// Ant walks the graph building capacity-feasible, customer-only routes one
// vehicle at a time until every customer is covered, the fleet is exhausted,
// or it stalls (spec.md §4.3 steps 1-5). Energy is deliberately not enforced
// here: a route the ant produces may outrun the battery between two
// customers, and resolving that is the repair phase's job (SpliceAllRoutes
// splices a station into the edge afterward). An Ant holds no state beyond a
// single call to Walk; it is not reused across iterations.
type Ant struct {
	opts Options
}

// NewAnt returns an Ant configured by opts.
func NewAnt(opts Options) Ant {
	return Ant{opts: opts}
}

// Walk builds a full solution (one or more depot-anchored routes covering
// every customer it can reach) against g, using r for every probabilistic
// choice. No more than Instance.Vehicles routes are dispatched; customers the
// ant cannot place within that fleet, or within MaxAntSteps, are returned in
// leftover. Walk never mutates g's pheromones; deposit happens once per
// iteration in the constructor after fitness is determined.
func (a Ant) Walk(g *model.Graph, r *rand.Rand) (routes [][]string, leftover []string) {
	capacity := g.Instance().Capacity
	depot := g.Instance().DepotKey()
	vehicles := g.Instance().Vehicles

	remaining := make(map[string]bool)
	for _, key := range g.Instance().Customers() {
		remaining[key] = true
	}

	steps := 0
	dispatched := 0
	for len(remaining) > 0 && dispatched < vehicles && steps < a.opts.MaxAntSteps {
		route, placed := a.buildOneRoute(g, r, depot, capacity, vehicles, dispatched, remaining, &steps)
		if len(placed) == 0 {
			// No feasible next customer from the depot itself: nothing more
			// this ant can do.
			break
		}
		routes = append(routes, route)
		dispatched++
	}

	for key := range remaining {
		leftover = append(leftover, key)
	}
	return routes, leftover
}

// buildOneRoute grows a single depot-anchored route by repeatedly choosing
// the next node via roulette selection over desirability, stopping when no
// remaining customer fits within capacity or the ant chooses to close
// (spec.md §4.3 step 4: "the ant may also close the route early, weighted by
// the depot's own desirability among the candidate set"). dispatched is the
// number of routes this ant has already closed before this one; it and
// vehicles (fleet size K) gate whether the depot is offered at all (step 2).
func (a Ant) buildOneRoute(g *model.Graph, r *rand.Rand, depot string, capacity, vehicles, dispatched int, remaining map[string]bool, steps *int) (route []string, placed []string) {
	route = []string{depot}
	load := 0
	current := depot

	for *steps < a.opts.MaxAntSteps {
		*steps++
		candidates := a.candidateSet(g, current, depot, load, capacity, vehicles, dispatched, remaining)
		if len(candidates) == 0 {
			break
		}
		next, err := rng.RouletteSelect(candidates, r)
		if err != nil {
			break
		}
		if next == depot {
			break
		}
		route = append(route, next)
		placed = append(placed, next)
		load += g.Demand(next)
		delete(remaining, next)
		current = next
	}
	route = append(route, depot)
	return route, placed
}

// candidateSet returns the roulette choices available from current: every
// remaining customer whose demand still fits within capacity (spec.md §4.3
// step 1 — energy is not a construction-time constraint), plus the depot
// itself when step 2's fleet-aware trigger allows closing now: either no
// customer is a feasible next hop, or the demand still unplaced across all
// remaining customers fits within the capacity the rest of the fleet
// (vehicles-dispatched-1 vehicles after this one closes) can still absorb.
// Stations are not offered directly here; splicing a station into an
// energy-infeasible edge is the repair phase's job (spec.md §9).
func (a Ant) candidateSet(g *model.Graph, current, depot string, load, capacity, vehicles, dispatched int, remaining map[string]bool) []rng.Choice[string] {
	var choices []rng.Choice[string]
	var remainingDemand int
	// Iterate customers in the instance's stable file order, not map
	// iteration order, so that weight-tied candidates break ties the same
	// way on every run with the same seed (spec.md §5 determinism).
	for _, key := range g.Instance().Customers() {
		if !remaining[key] {
			continue
		}
		demand := g.Demand(key)
		remainingDemand += demand
		if load+demand > capacity {
			continue
		}
		phi := g.GetPheromone(current, key)
		cost := g.MustCost(current, key)
		d := Desirability(phi, cost, a.opts.Alpha, a.opts.Beta)
		if d <= 0 {
			continue
		}
		choices = append(choices, rng.Choice[string]{Item: key, Weight: d})
	}

	remainingVehicleCap := capacity * (vehicles - dispatched - 1)
	if len(choices) == 0 || remainingDemand <= remainingVehicleCap {
		phi := g.GetPheromone(current, depot)
		cost := g.MustCost(current, depot)
		closeWeight := Desirability(phi, cost, a.opts.Alpha, a.opts.Beta)
		if closeWeight > 0 {
			choices = append(choices, rng.Choice[string]{Item: depot, Weight: closeWeight})
		}
	}
	if len(choices) == 0 {
		return nil
	}
	return normalizeWeights(choices)
}

// normalizeWeights rescales choices' weights to sum to 1, the precondition
// rng.RouletteSelect requires for a valid fitness-proportionate draw.
func normalizeWeights(choices []rng.Choice[string]) []rng.Choice[string] {
	var total float64
	for _, c := range choices {
		total += c.Weight
	}
	if total <= 0 {
		return nil
	}
	out := make([]rng.Choice[string], len(choices))
	for i, c := range choices {
		out[i] = rng.Choice[string]{Item: c.Item, Weight: c.Weight / total}
	}
	return out
}
