package datasource

import (
	"time"

	"github.com/google/uuid"

	"github.com/kherve/classplan/core/model"
)

// DemoProblem generates the bundled demonstration dataset: ten timeslots
// over Monday and Tuesday, three rooms, and a two-grade curriculum where
// several subjects repeat during the week. Lesson IDs are fresh UUIDs.
func DemoProblem() *model.Solution {
	slot := func(day time.Weekday, start, end string) *model.Timeslot {
		s, err := model.ParseTimeOfDay(start)
		if err != nil {
			panic(err)
		}
		e, err := model.ParseTimeOfDay(end)
		if err != nil {
			panic(err)
		}
		return &model.Timeslot{Day: day, Start: s, End: e}
	}

	timeslots := []*model.Timeslot{
		slot(time.Monday, "08:30", "09:30"),
		slot(time.Monday, "09:30", "10:30"),
		slot(time.Monday, "10:30", "11:30"),
		slot(time.Monday, "13:30", "14:30"),
		slot(time.Monday, "14:30", "15:30"),
		slot(time.Tuesday, "08:30", "09:30"),
		slot(time.Tuesday, "09:30", "10:30"),
		slot(time.Tuesday, "10:30", "11:30"),
		slot(time.Tuesday, "13:30", "14:30"),
		slot(time.Tuesday, "14:30", "15:30"),
	}

	rooms := []*model.Room{
		{Name: "Room A"},
		{Name: "Room B"},
		{Name: "Room C"},
	}

	lesson := func(subject, teacher, group string) *model.Lesson {
		return model.NewLesson(uuid.NewString(), subject, teacher, group)
	}

	lessons := []*model.Lesson{
		lesson("Math", "A. Turing", "9th grade"),
		lesson("Math", "A. Turing", "9th grade"),
		lesson("Physics", "M. Curie", "9th grade"),
		lesson("Chemistry", "M. Curie", "9th grade"),
		lesson("Biology", "C. Darwin", "9th grade"),
		lesson("History", "I. Jones", "9th grade"),
		lesson("English", "I. Jones", "9th grade"),
		lesson("English", "I. Jones", "9th grade"),
		lesson("Spanish", "P. Cruz", "9th grade"),
		lesson("Spanish", "P. Cruz", "9th grade"),

		lesson("Math", "A. Turing", "10th grade"),
		lesson("Math", "A. Turing", "10th grade"),
		lesson("Math", "A. Turing", "10th grade"),
		lesson("Physics", "M. Curie", "10th grade"),
		lesson("Chemistry", "M. Curie", "10th grade"),
		lesson("French", "M. Curie", "10th grade"),
		lesson("Geography", "C. Darwin", "10th grade"),
		lesson("History", "I. Jones", "10th grade"),
		lesson("English", "P. Cruz", "10th grade"),
		lesson("Spanish", "P. Cruz", "10th grade"),
	}

	return model.NewSolution(rooms, timeslots, lessons)
}
