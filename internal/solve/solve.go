// Package solve glues the two solve phases together: it runs MMAS
// construction (internal/mmas) to produce customer-only routes, splices
// recharging stations into them (internal/operators.SpliceAllRoutes), and
// hands the resulting State to the ALNS engine (internal/alns) to repair
// and improve. spec.md §3 describes this as the solver's "Data flow";
// there is no single file in the teacher doing this, since the teacher
// solves a single-phase TSP — this is the seam a complete CEVRP solve
// needs that a plain port of tsp/two_opt.go would not have.
package solve

import (
	"fmt"
	"time"

	"github.com/andromedak2/cevrp/internal/alns"
	"github.com/andromedak2/cevrp/internal/metrics"
	"github.com/andromedak2/cevrp/internal/mmas"
	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/operators"
	"github.com/andromedak2/cevrp/internal/solution"
)

// Options bundles both phases' tuning knobs plus the deadline they share.
type Options struct {
	MMAS mmas.Options
	ALNS alns.Options

	// StopTime, if non-zero, is split evenly between the two phases: MMAS
	// gets the first half, ALNS the remainder, so a single deadline bounds
	// the whole solve regardless of how the two phases trade off time.
	StopTime time.Time
}

// Result is the outcome of a full two-phase solve.
type Result struct {
	ConstructionCost     float64
	ConstructionDuration time.Duration
	ConstructionRuns     int
	Final                *solution.State
	RepairDuration       time.Duration
	FinalIterations      int
	StationsSpliced      bool
}

// Run executes MMAS construction, splices stations into its best route
// set, and runs ALNS on the result, returning the fully improved State.
// It returns an error if MMAS finds no feasible solution at all.
func Run(g *model.Graph, opts Options, m *metrics.Collectors) (*Result, error) {
	mmasOpts := opts.MMAS
	mmasOpts.StopTime = splitDeadline(opts.StopTime, 0, 2)

	constructor := mmas.New(g, mmasOpts)
	if m != nil {
		constructor.WithMetrics(m)
	}

	constructionStart := time.Now()
	cres, err := constructor.Run()
	if err != nil {
		return nil, fmt.Errorf("solve: construction phase: %w", err)
	}
	constructionDuration := time.Since(constructionStart)

	routeSeqs := make([][]string, len(cres.Best.Routes))
	for i, r := range cres.Best.Routes {
		routeSeqs[i] = r.Nodes
	}
	spliced, allFeasible := operators.SpliceAllRoutes(g, routeSeqs, g.Instance().Battery)

	var routes []solution.Route
	var unassigned []string
	for _, seq := range spliced {
		rt := solution.NewRoute(g, seq)
		if rt.Feasible {
			routes = append(routes, rt)
		} else {
			unassigned = append(unassigned, rt.Customers(g)...)
		}
	}
	initial := solution.New(routes, unassigned)

	engine := alns.New(g, opts.ALNS)
	if m != nil {
		engine.WithMetrics(m)
	}

	alnsStop := splitDeadline(opts.StopTime, 1, 2)
	repairStart := time.Now()
	ares := engine.Run(initial, alnsStop)
	repairDuration := time.Since(repairStart)

	return &Result{
		ConstructionCost:     cres.Best.Objective(),
		ConstructionDuration: constructionDuration,
		ConstructionRuns:     cres.Iterations,
		Final:                ares.Best,
		RepairDuration:       repairDuration,
		FinalIterations:      ares.Iterations,
		StationsSpliced:      allFeasible,
	}, nil
}

// splitDeadline divides the interval between now and deadline into parts
// slices, returning the end of slice index part (0-based). A zero deadline
// passes through unchanged (no deadline at all).
func splitDeadline(deadline time.Time, part, of int) time.Time {
	if deadline.IsZero() {
		return deadline
	}
	now := time.Now()
	total := deadline.Sub(now)
	if total <= 0 {
		return deadline
	}
	frac := total * time.Duration(part+1) / time.Duration(of)
	return now.Add(frac)
}
