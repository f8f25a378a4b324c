// Package metrics registers the Prometheus collectors that observe a solve
// (iteration counts, best-cost gauges, operator acceptance rates), grounded
// on descheduler's client_golang usage (its own descheduling-loop
// counters/gauges) — the only metrics library in the retrieved pack.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors bundles every metric a solve reports. Construct one per
// process with New and register it with a prometheus.Registerer (or skip
// registration entirely for a library-only embed).
type Collectors struct {
	MMASIterations prometheus.Counter
	MMASBestCost   prometheus.Gauge

	ALNSIterations prometheus.Counter
	ALNSBestCost   prometheus.Gauge

	OperatorOutcomes *prometheus.CounterVec
}

// New builds a Collectors with the cevrp_ namespace.
func New() *Collectors {
	return &Collectors{
		MMASIterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cevrp",
			Subsystem: "mmas",
			Name:      "iterations_total",
			Help:      "Total MMAS iterations executed.",
		}),
		MMASBestCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cevrp",
			Subsystem: "mmas",
			Name:      "best_cost",
			Help:      "Best route cost found by the MMAS construction phase.",
		}),
		ALNSIterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cevrp",
			Subsystem: "alns",
			Name:      "iterations_total",
			Help:      "Total ALNS iterations executed.",
		}),
		ALNSBestCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cevrp",
			Subsystem: "alns",
			Name:      "best_cost",
			Help:      "Best route cost found by the ALNS phase.",
		}),
		OperatorOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cevrp",
			Subsystem: "alns",
			Name:      "operator_outcomes_total",
			Help:      "Count of ALNS operator outcomes by operator name and bucket.",
		}, []string{"operator", "bucket"}),
	}
}

// MustRegister registers every collector with reg.
func (c *Collectors) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		c.MMASIterations,
		c.MMASBestCost,
		c.ALNSIterations,
		c.ALNSBestCost,
		c.OperatorOutcomes,
	)
}
