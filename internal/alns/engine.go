package alns

import (
	"time"

	"github.com/andromedak2/cevrp/internal/localsearch"
	"github.com/andromedak2/cevrp/internal/metrics"
	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/rng"
	"github.com/andromedak2/cevrp/internal/solution"
)

var bucketNames = [4]string{"new_best", "better_than_current", "accepted_worse", "rejected"}

// Result is the outcome of an ALNS run.
type Result struct {
	Best       *solution.State
	Iterations int
}

// Engine runs the ALNS state machine (spec.md §4.5) against a shared Graph,
// starting from an initial feasible State.
type Engine struct {
	g    *model.Graph
	opts Options

	destroyOps []namedOp[DestroyOp]
	repairOps  []namedOp[RepairOp]

	metrics *metrics.Collectors
}

// New returns an Engine for g configured by opts.
func New(g *model.Graph, opts Options) *Engine {
	return &Engine{
		g:          g,
		opts:       opts,
		destroyOps: destroyRegistry(opts.WorstRemovalFraction),
		repairOps:  repairRegistry(),
	}
}

// WithMetrics attaches a metrics.Collectors that Run reports iteration
// counts, best-cost gauges, and operator outcomes to.
func (e *Engine) WithMetrics(c *metrics.Collectors) *Engine {
	e.metrics = c
	return e
}

// Run executes opts.NumIterations ALNS iterations starting from initial
// (spec.md §4.5's state machine): select destroy+repair via independent
// roulette wheels, apply them, score the outcome against the four buckets,
// accept or reject via Record-to-Record Travel, update operator weights,
// and on a new global best run a random C4 local-search operator on it.
func (e *Engine) Run(initial *solution.State, stopTime time.Time) *Result {
	capacity := e.g.Instance().Capacity
	battery := e.g.Instance().Battery

	current := initial.Clone()
	best := initial.Clone()
	currentCost := current.Objective()
	bestCost := currentCost

	rt := NewRecordToRecordTravel(currentCost, e.opts.StartThreshold, e.opts.EndThreshold, e.opts.NumIterations)

	destroyWeights := newWeightedIndex(len(e.destroyOps), 1, e.opts.RWDecay)
	repairWeights := newWeightedIndex(len(e.repairOps), 1, e.opts.RWDecay)

	baseRNG := rng.FromSeed(e.opts.Seed)

	iter := 0
	for ; iter < e.opts.NumIterations; iter++ {
		if !stopTime.IsZero() && time.Now().After(stopTime) {
			break
		}

		r := rng.Derive(baseRNG, uint64(iter))

		dIdx, err := destroyWeights.Select(r)
		if err != nil {
			continue
		}
		rIdx, err := repairWeights.Select(r)
		if err != nil {
			continue
		}

		destroyed := e.destroyOps[dIdx].fn(e.g, current, r)
		repaired := e.repairOps[rIdx].fn(e.g, destroyed, r)

		candidateCost := repaired.Objective()
		accepted := len(repaired.Unassigned) == 0 && rt.Accept(candidateCost, bestCost, iter)
		b := classify(candidateCost, bestCost, currentCost, accepted)

		destroyWeights.Update(dIdx, e.opts.RWWeights[b])
		repairWeights.Update(rIdx, e.opts.RWWeights[b])

		if e.metrics != nil {
			e.metrics.ALNSIterations.Inc()
			e.metrics.OperatorOutcomes.WithLabelValues(e.destroyOps[dIdx].name, bucketNames[b]).Inc()
			e.metrics.OperatorOutcomes.WithLabelValues(e.repairOps[rIdx].name, bucketNames[b]).Inc()
		}

		if !accepted {
			continue
		}

		current = repaired
		currentCost = candidateCost

		if candidateCost < bestCost {
			best = current.Clone()
			bestCost = candidateCost
			polished := localsearch.ApplyRandom(e.g, best, capacity, battery, r)
			if polished.Objective() < bestCost {
				best = polished
				bestCost = polished.Objective()
			}
			if e.metrics != nil {
				e.metrics.ALNSBestCost.Set(bestCost)
			}
		}
	}

	return &Result{Best: best, Iterations: iter}
}
