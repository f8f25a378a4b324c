package model

// PathCost returns the sum of consecutive-pair costs along seq.
// Complexity: O(len(seq)).
func (g *Graph) PathCost(seq []string) float64 {
	var total float64
	for i := 0; i+1 < len(seq); i++ {
		total += g.MustCost(seq[i], seq[i+1])
	}
	return total
}

// PathDemand returns the sum of demands of non-station nodes in seq
// (spec.md §4.1: "Σ demand of non-station nodes" — the depot's demand is
// always zero so it needs no special case).
func (g *Graph) PathDemand(seq []string) int {
	var total int
	for _, key := range seq {
		if !g.IsStation(key) {
			total += g.Demand(key)
		}
	}
	return total
}

// PathEnergyRunning computes the maximum instantaneous battery usage
// between anchors (depot/station visits) by walking seq once, accumulating
// edge energy and resetting the running total to 0 whenever the node just
// departed was a station or the depot, then reporting the largest running
// total observed. This is the "sum-then-reset, report max" formulation
// (spec.md §4.1).
func (g *Graph) PathEnergyRunning(seq []string) float64 {
	var running, max float64
	for i := 0; i+1 < len(seq); i++ {
		running += g.EdgeEnergy(seq[i], seq[i+1])
		if running > max {
			max = running
		}
		if g.IsStation(seq[i+1]) || g.IsDepot(seq[i+1]) {
			running = 0
		}
	}
	return max
}

// PathEnergySegmented computes the same quantity as PathEnergyRunning by
// first partitioning seq into segments at every depot/station anchor, then
// reporting the maximum per-segment sum. This is the alternative
// formulation spec.md §4.1 requires to agree with PathEnergyRunning on
// every literal fixture ("test suite asserts both formulations").
func (g *Graph) PathEnergySegmented(seq []string) float64 {
	var max float64
	start := 0
	for i, key := range seq {
		if i > start && (g.IsStation(key) || g.IsDepot(key)) {
			seg := g.PathCost(seq[start:i+1]) * g.inst.ConsumptionFactor
			if seg > max {
				max = seg
			}
			start = i
		}
	}
	return max
}

// PathEnergy is the canonical energy query used by the rest of the codebase:
// PathEnergyRunning, asserted (in tests, not at runtime) to agree with
// PathEnergySegmented on every fixture in this repository.
func (g *Graph) PathEnergy(seq []string) float64 {
	return g.PathEnergyRunning(seq)
}

// IsEnergyFeasible reports whether seq's energy usage never exceeds battery B.
func (g *Graph) IsEnergyFeasible(seq []string, battery float64) bool {
	return g.PathEnergy(seq) <= battery
}
