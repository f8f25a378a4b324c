// Package solution implements the CEVRP solution state (C2): routes over a
// shared Graph plus an unassigned-customer list, with deep-clone and
// recompute operations that keep every derived attribute consistent with
// the underlying node sequence.
//
// Grounded on the teacher's core.Graph clone family (core/methods_clone.go):
// routes are value-like owned containers of node keys; cloning a State
// copies route contents but re-borrows the Graph and Instance by reference
// (spec.md §3 "Lifecycles").
package solution

import "github.com/andromedak2/cevrp/internal/model"

// Route is an ordered sequence of node keys with attributes derived from
// that sequence via Recompute. A zero Route is not meaningful; build one
// with NewRoute or by direct construction followed by Recompute.
type Route struct {
	Nodes []string

	TotalCost     float64
	TotalDemand   int
	CurrentEnergy float64
	Feasible      bool
}

// NewRoute builds a Route from nodes and immediately recomputes its
// derived attributes against g.
func NewRoute(g *model.Graph, nodes []string) Route {
	r := Route{Nodes: append([]string(nil), nodes...)}
	Recompute(g, &r, g.Instance().Capacity, g.Instance().Battery)
	return r
}

// Recompute recomputes TotalCost, TotalDemand, CurrentEnergy, and Feasible
// from r.Nodes (spec.md §4.2 "Every mutation of a route MUST be followed by
// recompute"). capacity and battery are the instance's Q and B.
func Recompute(g *model.Graph, r *Route, capacity int, battery float64) {
	r.TotalCost = g.PathCost(r.Nodes)
	r.TotalDemand = g.PathDemand(r.Nodes)
	r.CurrentEnergy = g.PathEnergy(r.Nodes)
	r.Feasible = isWellFormed(g, r.Nodes) &&
		r.TotalDemand <= capacity &&
		r.CurrentEnergy <= battery
}

// isWellFormed reports the depot-anchoring half of the feasibility
// predicate (spec.md §8): nodes[0]==nodes[-1]==depot.
func isWellFormed(g *model.Graph, nodes []string) bool {
	if len(nodes) < 2 {
		return false
	}
	return g.IsDepot(nodes[0]) && g.IsDepot(nodes[len(nodes)-1])
}

// Customers returns the interior customer keys of r, in route order
// (excludes the depot and any spliced stations).
func (r Route) Customers(g *model.Graph) []string {
	out := make([]string, 0, len(r.Nodes))
	for _, key := range r.Nodes {
		if !g.IsDepot(key) && !g.IsStation(key) {
			out = append(out, key)
		}
	}
	return out
}

// Clone returns an independent copy of r (node slice only; Graph/Instance
// are never owned by a Route).
func (r Route) Clone() Route {
	return Route{
		Nodes:         append([]string(nil), r.Nodes...),
		TotalCost:     r.TotalCost,
		TotalDemand:   r.TotalDemand,
		CurrentEnergy: r.CurrentEnergy,
		Feasible:      r.Feasible,
	}
}
