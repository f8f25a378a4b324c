package alns

// RecordToRecordTravel computes the per-iteration acceptance threshold
// T(iter), decaying linearly from T0=start*f(initial) to
// Tend=end*f(initial) over numIterations (spec.md §4.5 step 4).
type RecordToRecordTravel struct {
	t0, tend      float64
	numIterations int
}

// NewRecordToRecordTravel builds the threshold schedule from the initial
// state's objective value f0.
func NewRecordToRecordTravel(f0, start, end float64, numIterations int) RecordToRecordTravel {
	return RecordToRecordTravel{t0: start * f0, tend: end * f0, numIterations: numIterations}
}

// Threshold returns T(iter), clamped to the schedule's endpoints.
func (rt RecordToRecordTravel) Threshold(iter int) float64 {
	if rt.numIterations <= 1 {
		return rt.tend
	}
	frac := float64(iter) / float64(rt.numIterations-1)
	if frac > 1 {
		frac = 1
	}
	return rt.t0 + frac*(rt.tend-rt.t0)
}

// Accept reports whether a candidate of cost newCost should be accepted
// relative to the current best bestCost and this iteration's threshold:
// f(new) - f(best) <= T(iter) (spec.md §4.5 step 4).
func (rt RecordToRecordTravel) Accept(newCost, bestCost float64, iter int) bool {
	return newCost-bestCost <= rt.Threshold(iter)
}
