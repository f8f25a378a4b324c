package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andromedak2/cevrp/internal/alns"
	"github.com/andromedak2/cevrp/internal/mmas"
	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/solve"
)

func fiveCustomerInstance(t *testing.T) *model.Graph {
	t.Helper()
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 5, Y: 0}, Demand: 3, Kind: model.Customer},
		{Key: "3", Coord: model.Coord{X: 5, Y: 5}, Demand: 3, Kind: model.Customer},
		{Key: "4", Coord: model.Coord{X: 0, Y: 5}, Demand: 3, Kind: model.Customer},
		{Key: "5", Coord: model.Coord{X: -5, Y: 0}, Demand: 3, Kind: model.Customer},
		{Key: "6", Coord: model.Coord{X: -5, Y: -5}, Demand: 3, Kind: model.Customer},
		{Key: "S1", Coord: model.Coord{X: 0, Y: -5}, Kind: model.Station},
	}
	inst, err := model.NewInstance(nodes, 10, 100, 1, 3)
	require.NoError(t, err)
	return model.NewGraph(inst, 1.0)
}

func TestRunProducesCompleteSolution(t *testing.T) {
	g := fiveCustomerInstance(t)

	mmasOpts := mmas.DefaultOptions()
	mmasOpts.NumAnts = 10
	mmasOpts.NumIterations = 20
	mmasOpts.Seed = 7

	alnsOpts := alns.DefaultOptions()
	alnsOpts.NumIterations = 30
	alnsOpts.Seed = 11

	result, err := solve.Run(g, solve.Options{MMAS: mmasOpts, ALNS: alnsOpts}, nil)
	require.NoError(t, err)
	require.NotNil(t, result.Final)
	assert.True(t, result.Final.IsComplete())
	assert.Greater(t, result.ConstructionCost, 0.0)
}

// stationRequiredInstance mirrors spec.md §8 scenario 3: customer "2" is 9
// units from the depot, energy-infeasible in either direction on battery 6,
// but reachable by detouring through station "S" (6 units out, 3 from the
// customer) on both the outbound and return legs. A construction phase that
// filtered candidates by energy would never offer customer 2 at all and the
// whole solve would fail with ErrNoSolutionFound before ALNS ever ran.
func stationRequiredInstance(t *testing.T) *model.Graph {
	t.Helper()
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 9, Y: 0}, Demand: 1, Kind: model.Customer},
		{Key: "S", Coord: model.Coord{X: 6, Y: 0}, Kind: model.Station},
	}
	inst, err := model.NewInstance(nodes, 10, 6, 1, 1)
	require.NoError(t, err)
	return model.NewGraph(inst, 1.0)
}

func TestRunSplicesStationForUnreachableCustomer(t *testing.T) {
	g := stationRequiredInstance(t)

	mmasOpts := mmas.DefaultOptions()
	mmasOpts.NumAnts = 8
	mmasOpts.NumIterations = 20
	mmasOpts.Seed = 5

	alnsOpts := alns.DefaultOptions()
	alnsOpts.NumIterations = 20
	alnsOpts.Seed = 3

	result, err := solve.Run(g, solve.Options{MMAS: mmasOpts, ALNS: alnsOpts}, nil)
	require.NoError(t, err)
	require.NotNil(t, result.Final)
	assert.True(t, result.StationsSpliced)
	assert.True(t, result.Final.IsComplete())
	assert.Empty(t, result.Final.Unassigned)

	var sawCustomer bool
	for _, r := range result.Final.Routes {
		for _, key := range r.Customers(g) {
			if key == "2" {
				sawCustomer = true
			}
		}
	}
	assert.True(t, sawCustomer, "customer 2 must be served via the spliced station")
}
