// Package operators implements the destroy and repair operators (C6) the
// ALNS engine (C5) selects between, plus the station-selection subroutine
// shared by several repair operators (spec.md §4.6).
//
// Every operator here takes a *solution.State and returns a new one; none
// ever mutates its input, matching spec.md §5's shared-resource policy
// ("the engine never mutates a state passed to an operator") and grounded
// on the teacher's core.Graph clone-before-mutate discipline
// (core/methods_clone.go).
package operators

import (
	"math"

	"github.com/andromedak2/cevrp/internal/model"
)

// SelectStation implements the station-selection subroutine (spec.md
// §4.6): given the last visited node last, remaining energy used so far,
// and the battery budget, returns the station s minimizing cost(last,s)
// among stations reachable without exceeding battery, or ok=false if none
// exists.
func SelectStation(g *model.Graph, last string, energyUsed, battery float64) (station string, ok bool) {
	bestCost := math.Inf(1)
	for _, s := range g.Instance().Stations() {
		if s == last {
			continue
		}
		edgeEnergy := g.EdgeEnergy(last, s)
		if energyUsed+edgeEnergy > battery {
			continue
		}
		cost := g.MustCost(last, s)
		if cost < bestCost {
			bestCost = cost
			station = s
			ok = true
		}
	}
	return station, ok
}
