package mmas

import (
	"math"
	"math/rand"
	"time"

	"github.com/andromedak2/cevrp/internal/metrics"
	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/rng"
	"github.com/andromedak2/cevrp/internal/solution"
)

// minRouteLen is the fitness threshold for a "fit" ant route: a route must
// contain at least one customer between its depot anchors. spec.md's prose
// describes a "strictly more than 4 nodes" fitness threshold, but every
// Concrete Scenario in spec.md (the trivial triangle, 4 nodes; the
// one-customer boundary case, 3 nodes) is a legitimate MMAS output that
// threshold would reject outright. This implementation takes the testable
// scenarios as authoritative and fits any route with >=3 nodes — i.e. not
// the degenerate [depot, depot] shape. See DESIGN.md.
const minRouteLen = 3

// Result is the outcome of a single MMAS construction run.
type Result struct {
	Best       *solution.State
	SecondBest *solution.State
	Iterations int
}

// Constructor runs the MMAS iteration loop against a shared Graph.
type Constructor struct {
	opts Options
	g    *model.Graph

	metrics *metrics.Collectors
}

// New returns a Constructor for g configured by opts.
func New(g *model.Graph, opts Options) *Constructor {
	return &Constructor{opts: opts, g: g}
}

// WithMetrics attaches a metrics.Collectors that Run reports iteration
// counts and the best-cost gauge to.
func (c *Constructor) WithMetrics(m *metrics.Collectors) *Constructor {
	c.metrics = m
	return c
}

// Run executes the MMAS loop: each iteration, every ant walks independently
// against a substream RNG derived from baseSeed, fit ants are identified,
// the global best/second-best are updated from this iteration's results, and
// only then do fit ants deposit pheromone using the now-current best cost
// (spec.md §4.3 describes this ordering; the original Python implementation
// instead captures best cost at ant-creation time, before any update in the
// current iteration, which makes the very first iteration's deposit divide
// by infinity — deliberately not reproduced here; see DESIGN.md).
//
// Run returns ErrNoSolutionFound if no iteration ever produces a complete,
// capacity-feasible solution (energy is not checked here).
func (c *Constructor) Run() (*Result, error) {
	baseRNG := rng.FromSeed(c.opts.Seed)

	var best, secondBest *solution.State
	bestCost, secondBestCost := math.Inf(1), math.Inf(1)

	stagnant := 0
	iter := 0
	for iter = 0; iter < c.opts.NumIterations; iter++ {
		if !c.opts.StopTime.IsZero() && time.Now().After(c.opts.StopTime) {
			break
		}

		fit := c.runIteration(baseRNG, iter)
		if len(fit) == 0 {
			stagnant++
			if stagnant >= c.opts.MaxIterationImprovement {
				break
			}
			continue
		}

		improved := false
		for _, st := range fit {
			cost := st.Objective()
			switch {
			case cost < bestCost:
				secondBest, secondBestCost = best, bestCost
				best, bestCost = st, cost
				improved = true
			case cost < secondBestCost:
				secondBest, secondBestCost = st, cost
			}
		}

		if improved {
			stagnant = 0
		} else {
			stagnant++
		}

		if bestCost > 0 && !math.IsInf(bestCost, 1) {
			c.depositPheromone(best, bestCost)
		}

		if c.metrics != nil {
			c.metrics.MMASIterations.Inc()
			c.metrics.MMASBestCost.Set(bestCost)
		}

		if stagnant >= c.opts.MaxIterationImprovement {
			break
		}
	}

	if best == nil {
		return nil, ErrNoSolutionFound
	}
	return &Result{Best: best, SecondBest: secondBest, Iterations: iter + 1}, nil
}

// runIteration runs opts.NumAnts ants against a substream derived from base
// for this iteration, returning the States of every fit ant (route length
// >= minRouteLen on every route, spec.md §4.3 step 5, and full customer
// coverage). Fitness here only checks capacity and depot-anchoring, not
// energy: construction ignores the battery entirely (spec.md §4.3 Purpose),
// so a route that would trip Route.Feasible's energy term is still a fit
// ant's output — splicing a station into it is the repair phase's job.
func (c *Constructor) runIteration(base *rand.Rand, iter int) []*solution.State {
	capacity := c.g.Instance().Capacity
	var fit []*solution.State
	for a := 0; a < c.opts.NumAnts; a++ {
		stream := uint64(iter)<<32 | uint64(a)
		r := rng.Derive(base, stream)
		ant := NewAnt(c.opts)
		routeSeqs, leftover := ant.Walk(c.g, r)
		if len(leftover) > 0 {
			continue
		}

		var routes []solution.Route
		allFit := true
		for _, seq := range routeSeqs {
			if len(seq) < minRouteLen {
				allFit = false
				break
			}
			rt := solution.NewRoute(c.g, seq)
			if rt.TotalDemand > capacity {
				allFit = false
				break
			}
			routes = append(routes, rt)
		}
		if !allFit || len(routes) == 0 {
			continue
		}
		fit = append(fit, solution.New(routes, nil))
	}
	return fit
}

// depositPheromone applies the MMAS update, clamped to [τ_min, τ_max]
// derived from bestCost, to every directed edge used by best (spec.md
// §4.3). n<=2 instances skip clamping; see TauMinMax.
func (c *Constructor) depositPheromone(best *solution.State, bestCost float64) {
	tauMin, tauMax, clamp := TauMinMax(c.opts.Rho, bestCost, c.g.N(), c.opts.PR)

	for _, route := range best.Routes {
		for i := 0; i+1 < len(route.Nodes); i++ {
			u, v := route.Nodes[i], route.Nodes[i+1]
			tau := c.g.GetPheromone(u, v)
			updated := UpdatePheromone(c.opts.Rho, tau, bestCost, tauMin, tauMax, clamp)
			c.g.SetPheromone(u, v, updated)
		}
	}
}
