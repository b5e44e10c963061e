package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kherve/classplan/core/metrics"
	"github.com/kherve/classplan/core/model"
)

func TestPromSinkRecordSolve(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	rec := coremetrics.SolveRecord{
		SolveID:  "s1",
		Started:  time.Now(),
		Duration: 2 * time.Second,
		Steps:    1200,
		Accepted: 300,
		Best:     model.Score{Hard: 0, Soft: -4},
		Feasible: true,
		Lessons:  20,
	}
	require.NoError(t, sink.RecordSolve(rec))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["timetable_solves_total"])
	assert.True(t, names["timetable_solve_duration_seconds"])
	assert.True(t, names["timetable_final_hard_score"])
	assert.True(t, names["timetable_final_soft_score"])
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	_, err = NewPromSinkWithRegistry(reg)
	assert.NoError(t, err, "re-registration must reuse existing collectors")
}
