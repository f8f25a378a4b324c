package solution

import "github.com/andromedak2/cevrp/internal/model"

// State is a full CEVRP solution: a set of Routes plus the customers not
// currently placed in any route (spec.md §3). A State never owns a *Graph;
// every operation that needs cost/energy queries takes the Graph as a
// parameter, mirroring the teacher's pattern of passing core.Graph/matrix
// references into free functions rather than embedding them.
type State struct {
	Routes     []Route
	Unassigned []string
}

// New builds a State from routes and an unassigned list (defensive copies).
func New(routes []Route, unassigned []string) *State {
	s := &State{
		Routes:     make([]Route, len(routes)),
		Unassigned: append([]string(nil), unassigned...),
	}
	for i, r := range routes {
		s.Routes[i] = r.Clone()
	}
	return s
}

// Objective returns the sum of all route costs (spec.md §4.2).
func (s *State) Objective() float64 {
	var total float64
	for _, r := range s.Routes {
		total += r.TotalCost
	}
	return total
}

// Clone returns a deep copy: every Route is independently copied, the
// unassigned list is copied, and the Graph/Instance remain shared by
// reference through whatever caller holds them (spec.md §9 "deep copies
// everywhere" re-architecture note: routes are owned containers, cloning a
// state copies routes and re-borrows the graph).
func (s *State) Clone() *State {
	clone := &State{
		Routes:     make([]Route, len(s.Routes)),
		Unassigned: append([]string(nil), s.Unassigned...),
	}
	for i, r := range s.Routes {
		clone.Routes[i] = r.Clone()
	}
	return clone
}

// IsComplete reports whether every customer is placed and every route is
// feasible (spec.md §3 "Solution... Lifecycles").
func (s *State) IsComplete() bool {
	if len(s.Unassigned) != 0 {
		return false
	}
	for _, r := range s.Routes {
		if !r.Feasible {
			return false
		}
	}
	return true
}

// CustomerMultiset returns the multiset of customer keys currently placed
// across every route, used by invariant checks (spec.md §8).
func (s *State) CustomerMultiset(g *model.Graph) map[string]int {
	counts := make(map[string]int)
	for _, r := range s.Routes {
		for _, key := range r.Customers(g) {
			counts[key]++
		}
	}
	return counts
}

// PruneEmptyRoutes removes routes with fewer than 3 nodes (i.e. nothing but
// the depot on each end, or malformed), returning their interior
// non-station nodes so the caller can push them to Unassigned. Routes of
// the trivial [depot, depot] shape are silently dropped with no nodes to
// displace.
func PruneEmptyRoutes(g *model.Graph, s *State) []string {
	var displaced []string
	kept := s.Routes[:0]
	for _, r := range s.Routes {
		if len(r.Nodes) < 3 {
			displaced = append(displaced, r.Customers(g)...)
			continue
		}
		kept = append(kept, r)
	}
	s.Routes = kept
	return displaced
}
