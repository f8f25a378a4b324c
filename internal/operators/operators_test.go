package operators_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/operators"
	"github.com/andromedak2/cevrp/internal/solution"
)

// stationInstance is a station-splicing scenario: depot "1" (0,0),
// customer "2" (9,0), station "S" (6,0); B=6 forces a station visit.
func stationInstance(t *testing.T) (*model.Instance, *model.Graph) {
	t.Helper()
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 9, Y: 0}, Demand: 1, Kind: model.Customer},
		{Key: "S", Coord: model.Coord{X: 6, Y: 0}, Kind: model.Station},
	}
	inst, err := model.NewInstance(nodes, 10, 6, 1, 1)
	require.NoError(t, err)
	return inst, model.NewGraph(inst, 1.0)
}

func TestSmartReinsertionSplicesStation(t *testing.T) {
	_, g := stationInstance(t)
	spliced, ok := operators.SmartReinsertion(g, []string{"1", "2", "1"}, g.Instance().Battery)
	require.True(t, ok)
	assert.Contains(t, spliced, "S")
	assert.True(t, g.IsEnergyFeasible(spliced, g.Instance().Battery))
}

func TestSelectStationPicksCheapestReachable(t *testing.T) {
	_, g := stationInstance(t)
	station, ok := operators.SelectStation(g, "1", 0, 6)
	require.True(t, ok)
	assert.Equal(t, "S", station)
}

func TestRemoveOvercapacityNodesTruncatesAtOverflow(t *testing.T) {
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 3, Y: 0}, Demand: 1, Kind: model.Customer},
		{Key: "3", Coord: model.Coord{X: 20, Y: 0}, Demand: 1, Kind: model.Customer},
	}
	inst, err := model.NewInstance(nodes, 10, 5, 1, 1)
	require.NoError(t, err)
	g := model.NewGraph(inst, 1.0)

	route := solution.Route{Nodes: []string{"1", "2", "3", "1"}}
	s := &solution.State{Routes: []solution.Route{route}}

	out := operators.RemoveOvercapacityNodes(g, s)
	assert.Contains(t, out.Unassigned, "3")
}

func TestGreedyInsertionPlacesUnassignedCustomer(t *testing.T) {
	_, g := stationInstance(t)
	s := solution.New(nil, []string{"2"})
	out := operators.GreedyInsertion(g, s)
	assert.Empty(t, out.Unassigned)
	require.Len(t, out.Routes, 1)
	assert.True(t, out.Routes[0].Feasible)
}

func TestClusterRemovalStaysWithinBudget(t *testing.T) {
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 1, Y: 0}, Demand: 1, Kind: model.Customer},
		{Key: "3", Coord: model.Coord{X: 2, Y: 0}, Demand: 1, Kind: model.Customer},
		{Key: "4", Coord: model.Coord{X: 10, Y: 0}, Demand: 1, Kind: model.Customer},
		{Key: "5", Coord: model.Coord{X: 11, Y: 0}, Demand: 1, Kind: model.Customer},
	}
	inst, err := model.NewInstance(nodes, 10, 1000, 1, 1)
	require.NoError(t, err)
	g := model.NewGraph(inst, 1.0)

	route := solution.NewRoute(g, []string{"1", "2", "3", "4", "5", "1"})
	s := solution.New([]solution.Route{route}, nil)

	r := rand.New(rand.NewSource(5))
	out := operators.ClusterRemoval(g, s, r)
	assert.LessOrEqual(t, len(out.Unassigned), 5)
}
