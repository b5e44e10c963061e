// Package timetable defines the school timetabling constraints. Each
// constraint is a stateless pairwise rule over the current lesson
// assignments; hard rules make a timetable infeasible, soft rules express
// preferences. Pairs involving an unassigned lesson never match, so partial
// solutions remain scorable during search.
package timetable

import "github.com/kherve/classplan/core/model"

// Kind distinguishes hard from soft constraints.
type Kind int

const (
	Hard Kind = iota
	Soft
)

func (k Kind) String() string {
	if k == Hard {
		return "hard"
	}
	return "soft"
}

// Constraint is a pairwise rule. Unordered rules are evaluated once per
// unordered lesson pair; ordered rules are evaluated in both directions
// because "a before b" and "b before a" are distinct events.
type Constraint struct {
	Name    string
	Kind    Kind
	Weight  model.Score
	Ordered bool
	Match   func(a, b *model.Lesson) bool
}

// Evaluate scans all lesson pairs and returns the constraint's total
// contribution.
func (c Constraint) Evaluate(lessons []*model.Lesson) model.Score {
	var total model.Score
	for i, a := range lessons {
		if c.Ordered {
			for j, b := range lessons {
				if i == j {
					continue
				}
				if c.Match(a, b) {
					total = total.Add(c.Weight)
				}
			}
			continue
		}
		for _, b := range lessons[i+1:] {
			if c.Match(a, b) {
				total = total.Add(c.Weight)
			}
		}
	}
	return total
}

// All returns the full constraint set in reporting order.
func All() []Constraint {
	return []Constraint{
		{
			Name:   "Room conflict",
			Kind:   Hard,
			Weight: model.Score{Hard: -1},
			Match:  roomConflict,
		},
		{
			Name:   "Teacher conflict",
			Kind:   Hard,
			Weight: model.Score{Hard: -1},
			Match:  teacherConflict,
		},
		{
			Name:   "Student group conflict",
			Kind:   Hard,
			Weight: model.Score{Hard: -1},
			Match:  studentGroupConflict,
		},
		{
			Name:   "Teacher room stability",
			Kind:   Soft,
			Weight: model.Score{Soft: -1},
			Match:  teacherRoomStability,
		},
		{
			Name:    "Teacher time efficiency",
			Kind:    Soft,
			Weight:  model.Score{Soft: 1},
			Ordered: true,
			Match:   teacherTimeEfficiency,
		},
		{
			Name:    "Student group subject variety",
			Kind:    Soft,
			Weight:  model.Score{Soft: -1},
			Ordered: true,
			Match:   studentGroupSubjectVariety,
		},
	}
}

func sameTimeslot(a, b *model.Lesson) bool {
	return a.Timeslot() != nil && a.Timeslot() == b.Timeslot()
}

func roomConflict(a, b *model.Lesson) bool {
	return sameTimeslot(a, b) && a.Room() != nil && a.Room() == b.Room()
}

func teacherConflict(a, b *model.Lesson) bool {
	return sameTimeslot(a, b) && a.Teacher == b.Teacher
}

func studentGroupConflict(a, b *model.Lesson) bool {
	return sameTimeslot(a, b) && a.StudentGroup == b.StudentGroup
}

func teacherRoomStability(a, b *model.Lesson) bool {
	return a.Timeslot() != nil && b.Timeslot() != nil &&
		a.Teacher == b.Teacher &&
		a.Room() != nil && b.Room() != nil && a.Room() != b.Room()
}

// consecutive reports whether b starts within [0, 30] minutes after a ends
// on the same day.
func consecutive(a, b *model.Lesson) bool {
	ta, tb := a.Timeslot(), b.Timeslot()
	if ta == nil || tb == nil || ta.Day != tb.Day {
		return false
	}
	gap := tb.Start.Minutes() - ta.End.Minutes()
	return gap >= 0 && gap <= 30
}

func teacherTimeEfficiency(a, b *model.Lesson) bool {
	return a.Teacher == b.Teacher && consecutive(a, b)
}

func studentGroupSubjectVariety(a, b *model.Lesson) bool {
	return a.Subject == b.Subject && a.StudentGroup == b.StudentGroup && consecutive(a, b)
}
