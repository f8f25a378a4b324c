package alns_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andromedak2/cevrp/internal/alns"
	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/solution"
)

func fourCustomerInstance(t *testing.T) (*model.Instance, *model.Graph) {
	t.Helper()
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 5, Y: 0}, Demand: 2, Kind: model.Customer},
		{Key: "3", Coord: model.Coord{X: 5, Y: 5}, Demand: 2, Kind: model.Customer},
		{Key: "4", Coord: model.Coord{X: 0, Y: 5}, Demand: 2, Kind: model.Customer},
		{Key: "5", Coord: model.Coord{X: -5, Y: 0}, Demand: 2, Kind: model.Customer},
	}
	inst, err := model.NewInstance(nodes, 20, 1000, 1, 1)
	require.NoError(t, err)
	return inst, model.NewGraph(inst, 1.0)
}

func TestEngineRunNeverWorsensBest(t *testing.T) {
	_, g := fourCustomerInstance(t)
	initial := solution.New([]solution.Route{
		solution.NewRoute(g, []string{"1", "2", "3", "4", "5", "1"}),
	}, nil)
	initialCost := initial.Objective()

	opts := alns.DefaultOptions()
	opts.NumIterations = 50
	opts.Seed = 3

	e := alns.New(g, opts)
	result := e.Run(initial, time.Time{})

	require.NotNil(t, result.Best)
	assert.True(t, result.Best.IsComplete())
	assert.LessOrEqual(t, result.Best.Objective(), initialCost+1e-6)
}

func TestEngineRunRespectsDeadline(t *testing.T) {
	_, g := fourCustomerInstance(t)
	initial := solution.New([]solution.Route{
		solution.NewRoute(g, []string{"1", "2", "3", "4", "5", "1"}),
	}, nil)

	opts := alns.DefaultOptions()
	opts.NumIterations = 1_000_000
	opts.Seed = 9

	e := alns.New(g, opts)
	result := e.Run(initial, time.Now().Add(20*time.Millisecond))
	assert.Less(t, result.Iterations, opts.NumIterations)
}
