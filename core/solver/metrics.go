package solver

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	movesEvaluated prometheus.Counter
	movesAccepted  prometheus.Counter
	movesDiscarded prometheus.Counter
	bestHardScore  prometheus.Gauge
	bestSoftScore  prometheus.Gauge
	solveDuration  prometheus.Histogram
)

// newCollectors creates new metric collectors.
func newCollectors() (prometheus.Counter, prometheus.Counter, prometheus.Counter, prometheus.Gauge, prometheus.Gauge, prometheus.Histogram) {
	eval := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solver_moves_evaluated_total",
		Help: "Number of candidate moves scored by the search loop",
	})
	acc := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solver_moves_accepted_total",
		Help: "Number of moves committed to the working solution",
	})
	disc := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solver_moves_discarded_total",
		Help: "Number of generated moves dropped for referencing foreign facts",
	})
	hard := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "solver_best_hard_score",
		Help: "Hard score of the best solution recorded so far",
	})
	soft := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "solver_best_soft_score",
		Help: "Soft score of the best solution recorded so far",
	})
	dur := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "solver_solve_duration_seconds",
		Help:    "Wall-clock duration of completed solving runs",
		Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
	})
	return eval, acc, disc, hard, soft, dur
}

func init() {
	movesEvaluated, movesAccepted, movesDiscarded, bestHardScore, bestSoftScore, solveDuration = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers solver metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(movesEvaluated, movesAccepted, movesDiscarded, bestHardScore, bestSoftScore, solveDuration)
}

// ResetMetrics reinitializes the collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	movesEvaluated, movesAccepted, movesDiscarded, bestHardScore, bestSoftScore, solveDuration = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
