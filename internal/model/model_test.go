package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andromedak2/cevrp/internal/model"
)

// triangleInstance builds spec.md §8 scenario 1: depot "1" at (0,0),
// customers "2" at (3,0) demand 1, "3" at (0,4) demand 1.
func triangleInstance(t *testing.T) *model.Instance {
	t.Helper()
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 3, Y: 0}, Demand: 1, Kind: model.Customer},
		{Key: "3", Coord: model.Coord{X: 0, Y: 4}, Demand: 1, Kind: model.Customer},
	}
	inst, err := model.NewInstance(nodes, 10, 100, 1, 1)
	require.NoError(t, err)
	return inst
}

func TestGraphTriangleCosts(t *testing.T) {
	inst := triangleInstance(t)
	g := model.NewGraph(inst, 1.0)

	c12, err := g.Cost("1", "2")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, c12, 1e-9)

	c13, err := g.Cost("1", "3")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, c13, 1e-9)

	c23, err := g.Cost("2", "3")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, c23, 1e-9)

	// Directed graph: cost must be symmetric for plain Euclidean distance.
	c21, _ := g.Cost("2", "1")
	assert.InDelta(t, c12, c21, 1e-9)
}

func TestPathCostDemandAndFeasibility(t *testing.T) {
	inst := triangleInstance(t)
	g := model.NewGraph(inst, 1.0)

	route := []string{"1", "2", "3", "1"}
	assert.InDelta(t, 12.0, g.PathCost(route), 1e-9) // 3+5+4
	assert.Equal(t, 2, g.PathDemand(route))
}

func TestUnknownNode(t *testing.T) {
	inst := triangleInstance(t)
	g := model.NewGraph(inst, 1.0)

	_, err := g.Cost("1", "nope")
	assert.ErrorIs(t, err, model.ErrUnknownNode)
}

func TestZeroCostEdgeYieldsZeroEnergy(t *testing.T) {
	// Two distinct nodes at the same coordinates: cost=0, so edge energy=0
	// and the edge must never contribute to a division (spec.md §8 boundary).
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 0, Y: 0}, Demand: 1, Kind: model.Customer},
	}
	inst, err := model.NewInstance(nodes, 10, 100, 1, 1)
	require.NoError(t, err)
	g := model.NewGraph(inst, 1.0)

	assert.Equal(t, 0.0, g.EdgeEnergy("1", "2"))
}

func TestPathEnergyBothFormulationsAgree(t *testing.T) {
	// Station splicing (the same geometry the mmas and solve tests use).
	// Depot "1" (0,0), customer "2" (9,0) demand 1, station "S" (6,0); B=6, h=1.
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 9, Y: 0}, Demand: 1, Kind: model.Customer},
		{Key: "S", Coord: model.Coord{X: 6, Y: 0}, Kind: model.Station},
	}
	inst, err := model.NewInstance(nodes, 10, 6, 1, 1)
	require.NoError(t, err)
	g := model.NewGraph(inst, 1.0)

	route := []string{"1", "S", "2", "S", "1"}
	running := g.PathEnergyRunning(route)
	segmented := g.PathEnergySegmented(route)
	assert.InDelta(t, running, segmented, 1e-9)
	assert.InDelta(t, 6.0, running, 1e-9) // each anchor-to-anchor segment uses exactly 6 <= B=6
	assert.True(t, g.IsEnergyFeasible(route, inst.Battery))

	direct := []string{"1", "2", "1"}
	assert.InDelta(t, 18.0, g.PathEnergyRunning(direct), 1e-9)
	assert.False(t, g.IsEnergyFeasible(direct, inst.Battery))
}

func TestInstanceValidation(t *testing.T) {
	_, err := model.NewInstance(nil, 10, 10, 1, 1)
	assert.ErrorIs(t, err, model.ErrEmptyInstance)

	_, err = model.NewInstance([]model.Node{{Key: "1", Kind: model.Customer}}, 10, 10, 1, 1)
	assert.ErrorIs(t, err, model.ErrNoDepot)

	_, err = model.NewInstance([]model.Node{
		{Key: "1", Kind: model.Depot},
		{Key: "2", Kind: model.Depot},
	}, 10, 10, 1, 1)
	assert.ErrorIs(t, err, model.ErrMultipleDepots)

	_, err = model.NewInstance([]model.Node{{Key: "1", Kind: model.Depot}}, 0, 10, 1, 1)
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}
