package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kherve/classplan/core/model"
)

func moveFixture() *model.Solution {
	rooms := []*model.Room{{Name: "Room A"}, {Name: "Room B"}}
	timeslots := []*model.Timeslot{
		{Day: time.Monday, Start: 510, End: 570},
		{Day: time.Monday, Start: 570, End: 630},
	}
	a := model.NewLesson("a", "Math", "Turing", "9th")
	a.SetTimeslot(timeslots[0])
	a.SetRoom(rooms[0])
	b := model.NewLesson("b", "Physics", "Curie", "10th")
	b.SetTimeslot(timeslots[1])
	b.SetRoom(rooms[1])
	return model.NewSolution(rooms, timeslots, []*model.Lesson{a, b})
}

func TestChangeTimeslotMoveApplyUndo(t *testing.T) {
	s := moveFixture()
	l := s.Lessons[0]
	m := &ChangeTimeslotMove{Lesson: l, To: s.Timeslots[1]}

	assert.True(t, m.Valid(s))
	m.Apply(s)
	assert.Same(t, s.Timeslots[1], l.Timeslot())
	assert.Same(t, s.Rooms[0], l.Room(), "room must be untouched")
	m.Undo(s)
	assert.Same(t, s.Timeslots[0], l.Timeslot())
}

func TestChangeRoomMoveApplyUndo(t *testing.T) {
	s := moveFixture()
	l := s.Lessons[0]
	m := &ChangeRoomMove{Lesson: l, To: s.Rooms[1]}

	assert.True(t, m.Valid(s))
	m.Apply(s)
	assert.Same(t, s.Rooms[1], l.Room())
	assert.Same(t, s.Timeslots[0], l.Timeslot(), "timeslot must be untouched")
	m.Undo(s)
	assert.Same(t, s.Rooms[0], l.Room())
}

func TestSwapMoveApplyUndo(t *testing.T) {
	s := moveFixture()
	a, b := s.Lessons[0], s.Lessons[1]
	m := &SwapMove{A: a, B: b}

	m.Apply(s)
	assert.Same(t, s.Timeslots[1], a.Timeslot())
	assert.Same(t, s.Rooms[1], a.Room())
	assert.Same(t, s.Timeslots[0], b.Timeslot())
	assert.Same(t, s.Rooms[0], b.Room())
	m.Undo(s)
	assert.Same(t, s.Timeslots[0], a.Timeslot())
	assert.Same(t, s.Rooms[0], a.Room())
	assert.Same(t, s.Timeslots[1], b.Timeslot())
	assert.Same(t, s.Rooms[1], b.Room())
}

func TestMoveValidRejectsForeignFacts(t *testing.T) {
	s := moveFixture()
	foreignSlot := &model.Timeslot{Day: time.Friday, Start: 510, End: 570}
	foreignRoom := &model.Room{Name: "elsewhere"}

	assert.False(t, (&ChangeTimeslotMove{Lesson: s.Lessons[0], To: foreignSlot}).Valid(s))
	assert.False(t, (&ChangeRoomMove{Lesson: s.Lessons[0], To: foreignRoom}).Valid(s))
	assert.False(t, (&SwapMove{A: s.Lessons[0], B: s.Lessons[0]}).Valid(s))
}
