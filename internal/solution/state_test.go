package solution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/solution"
)

func twoVehicleInstance(t *testing.T) (*model.Instance, *model.Graph) {
	t.Helper()
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 3, Y: 0}, Demand: 6, Kind: model.Customer},
		{Key: "3", Coord: model.Coord{X: 0, Y: 4}, Demand: 6, Kind: model.Customer},
	}
	inst, err := model.NewInstance(nodes, 10, 100, 1, 2)
	require.NoError(t, err)
	return inst, model.NewGraph(inst, 1.0)
}

func TestRouteRecomputeFeasibility(t *testing.T) {
	_, g := twoVehicleInstance(t)
	r := solution.NewRoute(g, []string{"1", "2", "1"})
	assert.True(t, r.Feasible)
	assert.Equal(t, 6, r.TotalDemand)
	assert.InDelta(t, 6.0, r.TotalCost, 1e-9)
}

func TestRouteInfeasibleOverCapacity(t *testing.T) {
	inst, g := twoVehicleInstance(t)
	_ = inst
	r := solution.NewRoute(g, []string{"1", "2", "3", "1"})
	assert.False(t, r.Feasible) // demand 12 > Q=10
}

func TestStateObjectiveAndClone(t *testing.T) {
	_, g := twoVehicleInstance(t)
	r1 := solution.NewRoute(g, []string{"1", "2", "1"})
	r2 := solution.NewRoute(g, []string{"1", "3", "1"})
	s := solution.New([]solution.Route{r1, r2}, nil)

	original := s.Objective()
	clone := s.Clone()
	assert.InDelta(t, original, clone.Objective(), 1e-9)

	// Mutating the clone must not affect the original (deep-clone idempotence).
	clone.Routes[0].Nodes[1] = "3"
	assert.Equal(t, "2", s.Routes[0].Nodes[1])
}

func TestStateIsCompleteRequiresNoUnassignedAndFeasible(t *testing.T) {
	_, g := twoVehicleInstance(t)
	r1 := solution.NewRoute(g, []string{"1", "2", "1"})
	s := solution.New([]solution.Route{r1}, []string{"3"})
	assert.False(t, s.IsComplete())

	s.Unassigned = nil
	assert.True(t, s.IsComplete())
}

func TestPruneEmptyRoutesDisplacesCustomers(t *testing.T) {
	_, g := twoVehicleInstance(t)
	r1 := solution.NewRoute(g, []string{"1", "2", "1"})
	empty := solution.NewRoute(g, []string{"1", "1"})
	s := solution.New([]solution.Route{r1, empty}, nil)

	displaced := solution.PruneEmptyRoutes(g, s)
	assert.Len(t, s.Routes, 1)
	assert.Empty(t, displaced) // the degenerate [depot,depot] route has no customers
}
