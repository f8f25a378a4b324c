package model

import "math"

// Graph is the complete directed distance/pheromone graph over an
// Instance's nodes (spec.md §3). Every ordered pair (u,v), u≠v, carries a
// Euclidean cost and a mutable pheromone level.
//
// Storage mirrors the teacher's matrix.Dense: two flat float64 slices
// indexed by index*n+index, avoiding per-edge map/pointer indirection
// (builder.Complete emits the same O(n²) ordered-pair shape, just over
// core.Graph edges instead of a dense slice).
type Graph struct {
	inst *Instance

	index map[string]int // node key -> dense index
	keys  []string       // dense index -> node key, inverse of index

	n    int
	cost []float64 // cost[i*n+j] = Euclidean distance between keys[i], keys[j]
	pher []float64 // pher[i*n+j] = current pheromone level on edge i->j
}

// NewGraph builds the complete directed distance graph for inst, with every
// pheromone initialized to tauMax (spec.md §4.3: "All edges are initialized
// at τ_max before the first iteration"). Pass tauMax=0 to defer pheromone
// initialization (e.g. when it is computed from a first-iteration best
// cost); SeedPheromones can initialize it later.
func NewGraph(inst *Instance, tauMax float64) *Graph {
	n := len(inst.Order)
	g := &Graph{
		inst:  inst,
		index: make(map[string]int, n),
		keys:  make([]string, n),
		n:     n,
		cost:  make([]float64, n*n),
		pher:  make([]float64, n*n),
	}
	for i, key := range inst.Order {
		g.index[key] = i
		g.keys[i] = key
	}
	for i := 0; i < n; i++ {
		ci := inst.Nodes[g.keys[i]].Coord
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			cj := inst.Nodes[g.keys[j]].Coord
			dx := ci.X - cj.X
			dy := ci.Y - cj.Y
			g.cost[i*n+j] = math.Sqrt(dx*dx + dy*dy)
			g.pher[i*n+j] = tauMax
		}
	}
	return g
}

// Instance returns the underlying immutable problem instance.
func (g *Graph) Instance() *Instance { return g.inst }

// N returns the node count.
func (g *Graph) N() int { return g.n }

func (g *Graph) idx(key string) (int, bool) {
	i, ok := g.index[key]
	return i, ok
}

// Cost returns the Euclidean distance between u and v. Returns
// ErrUnknownNode if either key is not in the graph.
func (g *Graph) Cost(u, v string) (float64, error) {
	iu, ok := g.idx(u)
	if !ok {
		return 0, ErrUnknownNode
	}
	iv, ok := g.idx(v)
	if !ok {
		return 0, ErrUnknownNode
	}
	if iu == iv {
		return 0, nil
	}
	return g.cost[iu*g.n+iv], nil
}

// MustCost is Cost without the error return, for hot loops that already
// know both keys are valid (every caller inside this module validates keys
// once against the Instance before entering a search loop).
func (g *Graph) MustCost(u, v string) float64 {
	c, _ := g.Cost(u, v)
	return c
}

// EdgeEnergy returns cost(u,v) * h, the energy consumed traversing u->v.
func (g *Graph) EdgeEnergy(u, v string) float64 {
	return g.MustCost(u, v) * g.inst.ConsumptionFactor
}

// Demand returns the demand of node v (0 for depot/station).
func (g *Graph) Demand(v string) int { return g.inst.Demand(v) }

// Coords returns the coordinates of node v.
func (g *Graph) Coords(v string) Coord { return g.inst.Coords(v) }

// IsStation reports whether v is a recharging station.
func (g *Graph) IsStation(v string) bool { return g.inst.IsStation(v) }

// IsDepot reports whether v is the depot.
func (g *Graph) IsDepot(v string) bool { return g.inst.IsDepot(v) }

// GetPheromone returns the current pheromone level on edge u->v.
func (g *Graph) GetPheromone(u, v string) float64 {
	iu, ok1 := g.idx(u)
	iv, ok2 := g.idx(v)
	if !ok1 || !ok2 || iu == iv {
		return 0
	}
	return g.pher[iu*g.n+iv]
}

// SetPheromone sets the pheromone level on edge u->v. It is a no-op for
// unknown keys or self-loops; callers in the MMAS phase are expected to
// have validated keys once up front.
func (g *Graph) SetPheromone(u, v string, x float64) {
	iu, ok1 := g.idx(u)
	iv, ok2 := g.idx(v)
	if !ok1 || !ok2 || iu == iv {
		return
	}
	g.pher[iu*g.n+iv] = x
}

// SeedPheromones sets every directed edge's pheromone to tauMax. Used once
// before the first MMAS iteration, per spec.md §4.3.
func (g *Graph) SeedPheromones(tauMax float64) {
	for i := range g.pher {
		g.pher[i] = tauMax
	}
}

// Keys returns the dense-index-ordered node keys (a defensive copy).
func (g *Graph) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}
