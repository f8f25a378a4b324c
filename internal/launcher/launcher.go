// Package launcher runs multiple independent solves concurrently and
// fans their results into a single channel, picking the best. spec.md §5
// describes the original's parallelism as process-level ("the launcher
// spawns multiple independent processes each with its own seed; no shared
// mutable state across them"); this implementation achieves the same
// isolation with goroutines instead of OS processes — each goroutine gets
// its own *model.Graph (pheromones are per-run mutable state) and its own
// derived RNG seed, so nothing is shared across runs but the read-only
// Instance — a lighter-weight substitute justified in DESIGN.md.
//
// Grounded on niceyeti-tabular's fan-in idiom (main.go's agent_worker /
// channerics.Merge pattern): each run is a worker producing a single
// result on its own channel; channerics.Merge fans every worker into one
// channel for the caller to drain.
package launcher

import (
	channerics "github.com/niceyeti/channerics/channels"

	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/solution"
)

// RunFunc executes one full solve against g using seed, returning the best
// State found (or nil on failure).
type RunFunc func(g *model.Graph, seed int64) *solution.State

// Result pairs a run's index and seed with its outcome.
type Result struct {
	Index int
	Seed  int64
	Best  *solution.State
}

// RunAll launches n independent runs of fn against inst, each with its own
// *model.Graph built from tauMax and its own seed derived from baseSeed,
// and returns every completed Result in the order they finish (not launch
// order — determinism lives within each run via its seed, not across the
// batch's completion order).
func RunAll(inst *model.Instance, tauMax float64, baseSeed int64, n int, fn RunFunc) []Result {
	done := make(chan struct{})
	defer close(done)

	workers := make([]<-chan Result, 0, n)
	for i := 0; i < n; i++ {
		workers = append(workers, runOne(done, inst, tauMax, baseSeed, i, fn))
	}

	var results []Result
	for r := range channerics.Merge(done, workers...) {
		results = append(results, r)
	}
	return results
}

func runOne(done <-chan struct{}, inst *model.Instance, tauMax float64, baseSeed int64, index int, fn RunFunc) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		seed := deriveRunSeed(baseSeed, index)
		g := model.NewGraph(inst, tauMax)
		best := fn(g, seed)
		select {
		case out <- Result{Index: index, Seed: seed, Best: best}:
		case <-done:
		}
	}()
	return out
}

// deriveRunSeed mixes baseSeed with the run index using the same
// avalanche construction as internal/rng, without importing it directly,
// so the launcher has no dependency on which RNG substreams each run
// chooses to derive internally.
func deriveRunSeed(baseSeed int64, index int) int64 {
	x := uint64(baseSeed) ^ (uint64(index) + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Best returns the lowest-objective complete State among results, or nil
// if none completed.
func Best(results []Result) *solution.State {
	var best *solution.State
	var bestCost float64
	for _, r := range results {
		if r.Best == nil || !r.Best.IsComplete() {
			continue
		}
		cost := r.Best.Objective()
		if best == nil || cost < bestCost {
			best, bestCost = r.Best, cost
		}
	}
	return best
}
