// Package events defines the solver lifecycle events published on the
// internal event bus. Subscribers such as metrics collectors or progress
// reporters consume them without touching solver state.
package events

import (
	"time"

	"github.com/kherve/classplan/core/model"
)

// SolveStarted is published once per solving run, after validation and
// initial construction.
type SolveStarted struct {
	Lessons   int
	Rooms     int
	Timeslots int
	Initial   model.Score
}

// BestSolutionChanged is published whenever the best recorded score
// improves. The best solution never regresses.
type BestSolutionChanged struct {
	Step    int
	Score   model.Score
	Elapsed time.Duration
}

// MoveDiscarded is published when a generated move referenced a fact
// outside the solution's fact sets. The move is dropped and the search
// continues.
type MoveDiscarded struct {
	Move string
}

// SolveEnded is published on termination with the run totals.
type SolveEnded struct {
	Steps     int
	Accepted  int
	Discarded int
	Best      model.Score
	Elapsed   time.Duration
}
