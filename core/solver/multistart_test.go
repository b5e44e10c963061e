package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kherve/classplan/core/model"
)

func TestSolveParallelPicksBest(t *testing.T) {
	cfg := Config{MaxSteps: 1000, Seed: 11, Starts: 4}
	got, err := SolveParallel(context.Background(), cfg, threeLessonProblem(3))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Score.Hard)
	assert.Equal(t, 3, got.AssignedCount())
}

func TestSolveParallelSingleStart(t *testing.T) {
	cfg := Config{MaxSteps: 500, Seed: 11}
	got, err := SolveParallel(context.Background(), cfg, threeLessonProblem(3))
	require.NoError(t, err)
	assert.True(t, got.Score.Feasible())
}

func TestSolveParallelValidatesInput(t *testing.T) {
	_, err := SolveParallel(context.Background(), Config{}, threeLessonProblem(3))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	noRooms := model.NewSolution(nil, threeLessonProblem(3).Timeslots, nil)
	_, err = SolveParallel(context.Background(), Config{MaxSteps: 10}, noRooms)
	assert.ErrorIs(t, err, model.ErrInvalidProblem)

	_, err = SolveParallel(context.Background(), Config{MaxSteps: 10}, nil)
	assert.ErrorIs(t, err, model.ErrInvalidProblem)
}

// Identical seeds and budgets must yield identical results: the search is
// deterministic apart from the wall-clock budget.
func TestSolveDeterministicForSeed(t *testing.T) {
	cfg := Config{MaxSteps: 800, Seed: 23}
	a, err := SolveParallel(context.Background(), cfg, threeLessonProblem(4))
	require.NoError(t, err)
	b, err := SolveParallel(context.Background(), cfg, threeLessonProblem(4))
	require.NoError(t, err)
	assert.Equal(t, a.Score, b.Score)
}
