package localsearch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andromedak2/cevrp/internal/localsearch"
	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/solution"
)

// squareInstance places four customers at the corners of a unit-ish square
// around the depot so a crossed route has an obvious 2-opt improvement.
func squareInstance(t *testing.T) (*model.Instance, *model.Graph) {
	t.Helper()
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 1, Y: 1}, Demand: 1, Kind: model.Customer},
		{Key: "3", Coord: model.Coord{X: -1, Y: 1}, Demand: 1, Kind: model.Customer},
		{Key: "4", Coord: model.Coord{X: -1, Y: -1}, Demand: 1, Kind: model.Customer},
		{Key: "5", Coord: model.Coord{X: 1, Y: -1}, Demand: 1, Kind: model.Customer},
	}
	inst, err := model.NewInstance(nodes, 10, 100, 1, 1)
	require.NoError(t, err)
	return inst, model.NewGraph(inst, 1.0)
}

func TestTwoOptUnknotsCrossedRoute(t *testing.T) {
	_, g := squareInstance(t)
	// This ordering crosses itself: 1 -> 2 -> 4 -> 3 -> 5 -> 1 visits corners
	// out of cyclic order, so 2-opt should find an improving reversal.
	crossed := []string{"1", "2", "4", "3", "5", "1"}
	before := g.PathCost(crossed)

	improved, ok := localsearch.TwoOpt(g, crossed, 10, 100)
	require.True(t, ok)
	assert.Less(t, g.PathCost(improved), before)
}

func TestTwoOptNoImprovementOnOptimalSquare(t *testing.T) {
	_, g := squareInstance(t)
	optimal := []string{"1", "2", "3", "4", "5", "1"}
	_, ok := localsearch.TwoOpt(g, optimal, 10, 100)
	assert.False(t, ok)
}

func TestNodeShiftMovesCustomerBetweenRoutes(t *testing.T) {
	nodes := []model.Node{
		{Key: "1", Coord: model.Coord{X: 0, Y: 0}, Kind: model.Depot},
		{Key: "2", Coord: model.Coord{X: 10, Y: 0}, Demand: 1, Kind: model.Customer},
		{Key: "3", Coord: model.Coord{X: 10, Y: 1}, Demand: 1, Kind: model.Customer},
		{Key: "4", Coord: model.Coord{X: -10, Y: 0}, Demand: 1, Kind: model.Customer},
	}
	inst, err := model.NewInstance(nodes, 10, 1000, 1, 2)
	require.NoError(t, err)
	g := model.NewGraph(inst, 1.0)

	// "3" is stranded alone with the far customer "4"; shifting it next to
	// "2" (its near neighbor) should reduce combined cost.
	src := []string{"1", "4", "3", "1"}
	dst := []string{"1", "2", "1"}
	before := g.PathCost(src) + g.PathCost(dst)

	newSrc, newDst, ok := localsearch.NodeShift(g, src, dst, 10, 1000)
	require.True(t, ok)
	assert.Less(t, g.PathCost(newSrc)+g.PathCost(newDst), before)
}

func TestApplyRandomPreservesFeasibility(t *testing.T) {
	_, g := squareInstance(t)
	r1 := solution.NewRoute(g, []string{"1", "2", "3", "1"})
	r2 := solution.NewRoute(g, []string{"1", "4", "5", "1"})
	s := solution.New([]solution.Route{r1, r2}, nil)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		s = localsearch.ApplyRandom(g, s, 10, 100, r)
		for _, route := range s.Routes {
			assert.True(t, route.Feasible)
		}
	}
}
