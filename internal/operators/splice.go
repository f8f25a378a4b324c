package operators

import "github.com/andromedak2/cevrp/internal/model"

// SmartReinsertion walks a single customer-only route and splices in a
// recharging station wherever the next edge (including the closing leg
// back to the depot) would overflow the battery, choosing the
// cheapest-to-reach feasible station at each insertion point (spec.md
// §4.6 "smart reinsertion / initial station-splicing"). Returns the
// spliced sequence and true if the result is fully energy-feasible, or the
// original sequence and false if some overflow has no reachable station.
func SmartReinsertion(g *model.Graph, nodes []string, battery float64) ([]string, bool) {
	if len(nodes) < 2 {
		return nodes, false
	}

	out := make([]string, 0, len(nodes))
	out = append(out, nodes[0])
	energy := 0.0
	ok := true

	for i := 0; i+1 < len(nodes); i++ {
		current := out[len(out)-1]
		next := nodes[i+1]
		edgeEnergy := g.EdgeEnergy(current, next)

		if energy+edgeEnergy > battery {
			station, found := SelectStation(g, current, energy, battery)
			if !found {
				ok = false
				out = append(out, next)
				if !g.IsStation(next) {
					energy += edgeEnergy
				}
				continue
			}
			out = append(out, station)
			energy = 0
			edgeEnergy = g.EdgeEnergy(station, next)
			if energy+edgeEnergy > battery {
				ok = false
			}
		}

		out = append(out, next)
		if g.IsStation(next) || g.IsDepot(next) {
			energy = 0
		} else {
			energy += edgeEnergy
		}
	}

	return out, ok
}

// SpliceAllRoutes applies SmartReinsertion to every route in a flattened
// customer-only solution, used to seed the ALNS phase from the MMAS
// construction output (spec.md §3 "Data flow").
func SpliceAllRoutes(g *model.Graph, routes [][]string, battery float64) (spliced [][]string, allFeasible bool) {
	allFeasible = true
	for _, r := range routes {
		s, ok := SmartReinsertion(g, r, battery)
		spliced = append(spliced, s)
		if !ok {
			allFeasible = false
		}
	}
	return spliced, allFeasible
}
