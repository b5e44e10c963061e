package solver

import (
	"fmt"

	"github.com/kherve/classplan/core/model"
)

// Move is an atomic, reversible mutation of one or two lessons' planning
// fields. Apply records the prior bindings so Undo restores them exactly;
// a move is always fully applied or fully undone.
type Move interface {
	Apply(s *model.Solution)
	Undo(s *model.Solution)
	// Affected returns the lessons whose bindings the move touches.
	Affected() []*model.Lesson
	// Valid reports whether every fact the move references belongs to the
	// solution's own fact sets.
	Valid(s *model.Solution) bool
	fmt.Stringer
}

// ChangeTimeslotMove reassigns one lesson to a different timeslot, leaving
// its room untouched.
type ChangeTimeslotMove struct {
	Lesson *model.Lesson
	To     *model.Timeslot

	prev *model.Timeslot
}

func (m *ChangeTimeslotMove) Apply(*model.Solution) {
	m.prev = m.Lesson.Timeslot()
	m.Lesson.SetTimeslot(m.To)
}

func (m *ChangeTimeslotMove) Undo(*model.Solution) {
	m.Lesson.SetTimeslot(m.prev)
}

func (m *ChangeTimeslotMove) Affected() []*model.Lesson { return []*model.Lesson{m.Lesson} }

func (m *ChangeTimeslotMove) Valid(s *model.Solution) bool { return s.HasTimeslot(m.To) }

func (m *ChangeTimeslotMove) String() string {
	return fmt.Sprintf("timeslot %s -> %s", m.Lesson.ID, m.To)
}

// ChangeRoomMove reassigns one lesson to a different room, leaving its
// timeslot untouched.
type ChangeRoomMove struct {
	Lesson *model.Lesson
	To     *model.Room

	prev *model.Room
}

func (m *ChangeRoomMove) Apply(*model.Solution) {
	m.prev = m.Lesson.Room()
	m.Lesson.SetRoom(m.To)
}

func (m *ChangeRoomMove) Undo(*model.Solution) {
	m.Lesson.SetRoom(m.prev)
}

func (m *ChangeRoomMove) Affected() []*model.Lesson { return []*model.Lesson{m.Lesson} }

func (m *ChangeRoomMove) Valid(s *model.Solution) bool { return s.HasRoom(m.To) }

func (m *ChangeRoomMove) String() string {
	return fmt.Sprintf("room %s -> %s", m.Lesson.ID, m.To)
}

// SwapMove exchanges the (timeslot, room) bindings of two distinct lessons.
type SwapMove struct {
	A *model.Lesson
	B *model.Lesson
}

func (m *SwapMove) Apply(*model.Solution) { m.swap() }

func (m *SwapMove) Undo(*model.Solution) { m.swap() }

func (m *SwapMove) swap() {
	at, ar := m.A.Timeslot(), m.A.Room()
	m.A.SetTimeslot(m.B.Timeslot())
	m.A.SetRoom(m.B.Room())
	m.B.SetTimeslot(at)
	m.B.SetRoom(ar)
}

func (m *SwapMove) Affected() []*model.Lesson { return []*model.Lesson{m.A, m.B} }

func (m *SwapMove) Valid(*model.Solution) bool { return m.A != m.B }

func (m *SwapMove) String() string {
	return fmt.Sprintf("swap %s <-> %s", m.A.ID, m.B.ID)
}
