// Package metrics defines the solver telemetry contract. A SolveSink
// receives one record per completed solving run; concrete sinks (Prometheus,
// InfluxDB, nop) live under infra/metrics and are assembled through the
// factory registry, optionally combined with NewMultiSink.
package metrics

import (
	"time"

	"github.com/kherve/classplan/core/model"
)

// SolveRecord summarizes one completed solving run.
type SolveRecord struct {
	SolveID   string
	Started   time.Time
	Duration  time.Duration
	Steps     int
	Accepted  int
	Discarded int
	Best      model.Score
	Feasible  bool
	Lessons   int
	Starts    int
}

// SolveSink persists solve records.
type SolveSink interface {
	RecordSolve(rec SolveRecord) error
}

// NopSink drops all records.
type NopSink struct{}

// RecordSolve implements SolveSink.
func (NopSink) RecordSolve(SolveRecord) error { return nil }

// MultiSink fans records out to several sinks, returning the first error.
type MultiSink struct {
	sinks []SolveSink
}

// NewMultiSink combines sinks into one.
func NewMultiSink(sinks ...SolveSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordSolve implements SolveSink.
func (m *MultiSink) RecordSolve(rec SolveRecord) error {
	for _, s := range m.sinks {
		if err := s.RecordSolve(rec); err != nil {
			return err
		}
	}
	return nil
}
