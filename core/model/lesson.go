package model

import "fmt"

// Lesson is the planning entity of the timetable. Subject, teacher and
// student group are fixed at construction; the timeslot and room bindings
// are assigned and reassigned during solving. Several lessons may share the
// same subject, teacher and student group and are told apart by ID only.
type Lesson struct {
	ID           string
	Subject      string
	Teacher      string
	StudentGroup string

	timeslot *Timeslot
	room     *Room
}

// NewLesson creates an unassigned lesson.
func NewLesson(id, subject, teacher, studentGroup string) *Lesson {
	return &Lesson{ID: id, Subject: subject, Teacher: teacher, StudentGroup: studentGroup}
}

// Timeslot returns the assigned timeslot, or nil while unassigned.
func (l *Lesson) Timeslot() *Timeslot { return l.timeslot }

// SetTimeslot binds the lesson to a timeslot. A nil value unassigns it.
func (l *Lesson) SetTimeslot(t *Timeslot) { l.timeslot = t }

// Room returns the assigned room, or nil while unassigned.
func (l *Lesson) Room() *Room { return l.room }

// SetRoom binds the lesson to a room. A nil value unassigns it.
func (l *Lesson) SetRoom(r *Room) { l.room = r }

// Assigned reports whether both planning fields are bound.
func (l *Lesson) Assigned() bool { return l.timeslot != nil && l.room != nil }

func (l *Lesson) String() string {
	return fmt.Sprintf("%s (%s/%s/%s)", l.ID, l.Subject, l.Teacher, l.StudentGroup)
}
