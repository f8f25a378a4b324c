package alns

import (
	"math/rand"

	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/operators"
	"github.com/andromedak2/cevrp/internal/solution"
)

// DestroyOp and RepairOp share the "(state, rng) -> state" signature
// spec.md §9's re-architecture note requires: operators never receive or
// return a back-reference to the state they were derived from, only a
// forward transformation. This is a deliberate break from the original's
// operator objects, which held a cyclic previous_state pointer.
type DestroyOp func(g *model.Graph, s *solution.State, r *rand.Rand) *solution.State
type RepairOp func(g *model.Graph, s *solution.State, r *rand.Rand) *solution.State

// destroyRegistry lists every destroy operator by name, in the order
// spec.md §4.6 presents them.
func destroyRegistry(worstFraction float64) []namedOp[DestroyOp] {
	return []namedOp[DestroyOp]{
		{"remove_overcapacity_nodes", func(g *model.Graph, s *solution.State, _ *rand.Rand) *solution.State {
			return operators.RemoveOvercapacityNodes(g, s)
		}},
		{"remove_charging_station", func(g *model.Graph, s *solution.State, r *rand.Rand) *solution.State {
			return operators.RemoveChargingStation(g, s, r)
		}},
		{"worst_removal", func(g *model.Graph, s *solution.State, _ *rand.Rand) *solution.State {
			return operators.WorstRemoval(g, s, worstFraction)
		}},
		{"cluster_removal", func(g *model.Graph, s *solution.State, r *rand.Rand) *solution.State {
			return operators.ClusterRemoval(g, s, r)
		}},
	}
}

// repairRegistry lists every repair operator by name, in the order
// spec.md §4.6 presents them (smart reinsertion is a construction-seed
// step, not a repeatable ALNS repair operator, so it is not registered
// here).
func repairRegistry() []namedOp[RepairOp] {
	return []namedOp[RepairOp]{
		{"greedy_insertion", func(g *model.Graph, s *solution.State, _ *rand.Rand) *solution.State {
			return operators.GreedyInsertion(g, s)
		}},
		{"regret_k_insertion", func(g *model.Graph, s *solution.State, _ *rand.Rand) *solution.State {
			return operators.RegretKInsertion(g, s)
		}},
		{"best_feasible_insertion", func(g *model.Graph, s *solution.State, _ *rand.Rand) *solution.State {
			return operators.BestFeasibleInsertion(g, s)
		}},
	}
}

type namedOp[F any] struct {
	name string
	fn   F
}
