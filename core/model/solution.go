package model

import (
	"errors"
	"fmt"
)

// ErrInvalidProblem marks configuration errors in the problem definition.
// Callers detect it with errors.Is.
var ErrInvalidProblem = errors.New("invalid problem")

// Solution owns the problem facts (rooms, timeslots), the planning entities
// (lessons) and the score derived from the current assignments. Facts are
// fixed for the whole solving run; only the (timeslot, room) binding of each
// lesson changes.
type Solution struct {
	Rooms     []*Room
	Timeslots []*Timeslot
	Lessons   []*Lesson
	Score     Score
}

// NewSolution assembles a solution from problem facts and unassigned lessons.
func NewSolution(rooms []*Room, timeslots []*Timeslot, lessons []*Lesson) *Solution {
	return &Solution{Rooms: rooms, Timeslots: timeslots, Lessons: lessons}
}

// Validate checks the structural invariants required before solving: both
// fact sets must be non-empty, lesson IDs must be unique and every assigned
// planning value must come from the solution's own fact sets. All violations
// wrap ErrInvalidProblem.
func (s *Solution) Validate() error {
	if len(s.Rooms) == 0 {
		return fmt.Errorf("%w: no rooms", ErrInvalidProblem)
	}
	if len(s.Timeslots) == 0 {
		return fmt.Errorf("%w: no timeslots", ErrInvalidProblem)
	}
	seen := make(map[string]struct{}, len(s.Lessons))
	for _, l := range s.Lessons {
		if l.ID == "" {
			return fmt.Errorf("%w: lesson without id", ErrInvalidProblem)
		}
		if _, dup := seen[l.ID]; dup {
			return fmt.Errorf("%w: duplicate lesson id %q", ErrInvalidProblem, l.ID)
		}
		seen[l.ID] = struct{}{}
		if t := l.Timeslot(); t != nil && !s.HasTimeslot(t) {
			return fmt.Errorf("%w: lesson %s assigned to foreign timeslot", ErrInvalidProblem, l.ID)
		}
		if r := l.Room(); r != nil && !s.HasRoom(r) {
			return fmt.Errorf("%w: lesson %s assigned to foreign room", ErrInvalidProblem, l.ID)
		}
	}
	return nil
}

// HasTimeslot reports whether t is one of the solution's timeslot facts.
func (s *Solution) HasTimeslot(t *Timeslot) bool {
	for _, c := range s.Timeslots {
		if c == t {
			return true
		}
	}
	return false
}

// HasRoom reports whether r is one of the solution's room facts.
func (s *Solution) HasRoom(r *Room) bool {
	for _, c := range s.Rooms {
		if c == r {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the solution. Lessons are copied so
// the clone can be mutated freely; the immutable fact slices are shared,
// keeping fact pointer identity stable across copies.
func (s *Solution) Clone() *Solution {
	lessons := make([]*Lesson, len(s.Lessons))
	for i, l := range s.Lessons {
		c := *l
		lessons[i] = &c
	}
	return &Solution{
		Rooms:     s.Rooms,
		Timeslots: s.Timeslots,
		Lessons:   lessons,
		Score:     s.Score,
	}
}

// AssignedCount returns the number of fully assigned lessons.
func (s *Solution) AssignedCount() int {
	n := 0
	for _, l := range s.Lessons {
		if l.Assigned() {
			n++
		}
	}
	return n
}
