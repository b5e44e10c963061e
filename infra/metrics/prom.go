package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kherve/classplan/core/metrics"
)

// PromSink records completed solving runs as Prometheus metrics. The
// collectors register on the supplied registerer; serving them over HTTP is
// the caller's concern, never the solver's.
type PromSink struct {
	solves   *prometheus.CounterVec
	duration prometheus.Histogram
	hard     prometheus.Gauge
	soft     prometheus.Gauge
	steps    prometheus.Histogram
}

// NewPromSink registers solve metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timetable_solves_total",
			Help: "Completed solving runs",
		}, []string{"feasible"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "timetable_solve_duration_seconds",
			Help:    "Wall-clock duration of solving runs",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
		hard: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "timetable_final_hard_score",
			Help: "Hard score of the last completed run",
		}),
		soft: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "timetable_final_soft_score",
			Help: "Soft score of the last completed run",
		}),
		steps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "timetable_solve_steps",
			Help:    "Moves evaluated per solving run",
			Buckets: prometheus.ExponentialBuckets(100, 4, 8),
		}),
	}
	for _, c := range []prometheus.Collector{s.solves, s.duration, s.hard, s.soft, s.steps} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}
	return s, nil
}

// RecordSolve implements coremetrics.SolveSink.
func (s *PromSink) RecordSolve(rec coremetrics.SolveRecord) error {
	s.solves.WithLabelValues(strconv.FormatBool(rec.Feasible)).Inc()
	s.duration.Observe(rec.Duration.Seconds())
	s.hard.Set(float64(rec.Best.Hard))
	s.soft.Set(float64(rec.Best.Soft))
	s.steps.Observe(float64(rec.Steps))
	return nil
}
