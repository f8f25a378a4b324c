package operators

import (
	"math"
	"math/rand"

	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/solution"
)

// clusterRemovalBudget is δ, the cap on total nodes removed by one
// ClusterRemoval call (spec.md §4.6 "capped by δ=5").
const clusterRemovalBudget = 5

// ClusterRemoval picks a route with at least two customers, partitions its
// customers into two coordinate clusters via 2-means (kmeans2), and
// removes the larger cluster (capped by δ). It then repeatedly finds the
// not-yet-removed customer nearest (Euclidean) to any removed customer and
// removes an analogous cluster from that customer's route, until δ nodes
// are removed or no candidate route remains (spec.md §4.6 "cluster
// removal"). That search covers every route, including routes already
// clustered in this call.
// Any removal that would break a route's feasibility aborts that
// expansion step, leaving the route untouched.
func ClusterRemoval(g *model.Graph, s *solution.State, r *rand.Rand) *solution.State {
	eligible := eligibleRouteIndices(g, s)
	if len(eligible) == 0 {
		return s
	}

	out := s.Clone()
	startIdx := eligible[r.Intn(len(eligible))]
	removed := make(map[string]bool)

	removeClusterFromRoute(g, out, startIdx, r, removed)

	for len(removed) < clusterRemovalBudget {
		nextRoute, anchor, ok := nearestUnremovedCustomerRoute(g, out, removed)
		if !ok {
			break
		}
		before := len(removed)
		removeClusterFromRoute(g, out, nextRoute, r, removed)
		if len(removed) == before {
			break // nothing more could be removed from this route; stop expanding.
		}
		_ = anchor
	}

	return out
}

func eligibleRouteIndices(g *model.Graph, s *solution.State) []int {
	var out []int
	for i, route := range s.Routes {
		if len(route.Customers(g)) >= 2 {
			out = append(out, i)
		}
	}
	return out
}

// removeClusterFromRoute 2-means-clusters the route's customers, removes
// the larger cluster (capped so total removed across the call never
// exceeds clusterRemovalBudget), and aborts (leaving the route unchanged)
// if the result breaks feasibility.
func removeClusterFromRoute(g *model.Graph, s *solution.State, routeIdx int, r *rand.Rand, removed map[string]bool) {
	route := s.Routes[routeIdx]
	customers := route.Customers(g)
	if len(customers) < 2 {
		return
	}

	groupA, groupB := kmeans2(g, customers, r)
	larger := groupA
	if len(groupB) > len(groupA) {
		larger = groupB
	}

	budget := clusterRemovalBudget - len(removed)
	if budget <= 0 {
		return
	}
	if len(larger) > budget {
		larger = larger[:budget]
	}

	toRemove := make(map[string]bool, len(larger))
	for _, c := range larger {
		toRemove[c] = true
	}

	var kept []string
	for _, key := range route.Nodes {
		if toRemove[key] {
			continue
		}
		kept = append(kept, key)
	}

	if len(kept) < 3 {
		for _, key := range nonStationInterior(g, kept) {
			toRemove[key] = true
		}
		kept = []string{route.Nodes[0], route.Nodes[len(route.Nodes)-1]}
	}

	candidate := solution.NewRoute(g, kept)
	if !candidate.Feasible && len(kept) > 2 {
		// Reject: leave the route untouched.
		return
	}

	if len(kept) <= 2 {
		s.Routes = append(append([]solution.Route(nil), s.Routes[:routeIdx]...), s.Routes[routeIdx+1:]...)
	} else {
		s.Routes[routeIdx] = candidate
	}

	for key := range toRemove {
		removed[key] = true
		s.Unassigned = append(s.Unassigned, key)
	}
}

// kmeans2 runs five rounds of full-batch 2-means (every customer is
// reassigned each round; no mini-batch sampling) over customers'
// coordinates, seeded from two customers picked via r, returning the two
// resulting groups of customer keys.
func kmeans2(g *model.Graph, customers []string, r *rand.Rand) (groupA, groupB []string) {
	if len(customers) < 2 {
		return customers, nil
	}

	perm := r.Perm(len(customers))
	c0 := g.Coords(customers[perm[0]])
	c1 := g.Coords(customers[perm[1]])

	for iter := 0; iter < 5; iter++ {
		var grpA, grpB []string
		for _, key := range customers {
			c := g.Coords(key)
			if dist2(c, c0) <= dist2(c, c1) {
				grpA = append(grpA, key)
			} else {
				grpB = append(grpB, key)
			}
		}
		groupA, groupB = grpA, grpB
		if len(groupA) > 0 {
			c0 = centroid(g, groupA)
		}
		if len(groupB) > 0 {
			c1 = centroid(g, groupB)
		}
	}
	return groupA, groupB
}

func dist2(a, b model.Coord) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

func centroid(g *model.Graph, keys []string) model.Coord {
	var sx, sy float64
	for _, key := range keys {
		c := g.Coords(key)
		sx += c.X
		sy += c.Y
	}
	n := float64(len(keys))
	return model.Coord{X: sx / n, Y: sy / n}
}

// nearestUnremovedCustomerRoute finds, among routes not yet fully consumed,
// the route containing the customer nearest (Euclidean) to any already
// removed customer, excluding customers already removed.
func nearestUnremovedCustomerRoute(g *model.Graph, s *solution.State, removed map[string]bool) (routeIdx int, nearestKey string, ok bool) {
	bestDist := math.Inf(1)
	for ri, route := range s.Routes {
		for _, key := range route.Customers(g) {
			if removed[key] {
				continue
			}
			c := g.Coords(key)
			for removedKey := range removed {
				rc := g.Coords(removedKey)
				d := dist2(c, rc)
				if d < bestDist {
					bestDist = d
					routeIdx, nearestKey, ok = ri, key, true
				}
			}
		}
	}
	return routeIdx, nearestKey, ok
}
