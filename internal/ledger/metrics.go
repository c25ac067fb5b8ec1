package ledger

import "github.com/prometheus/client_golang/prometheus"

var sweepRewritten = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "ledger_running_totals_rewritten_total",
		Help: "How many transaction running totals were rewritten by recomputation sweeps.",
	},
)

var sweepDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name: "ledger_sweep_duration_seconds",
		Help: "Duration of running total recomputation sweeps in seconds.",
	},
)

var budgetOverdrawn = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "ledger_budget_spent_negative_total",
		Help: "How many budget adjustments left a negative spent amount.",
	},
)

// Collectors returns the Prometheus collectors of the ledger.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		sweepRewritten,
		sweepDuration,
		budgetOverdrawn,
	}
}
