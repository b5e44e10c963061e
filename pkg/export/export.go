// Package export renders a solved timetable and its per-constraint score
// breakdown for downstream consumers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/kherve/classplan/core/model"
	"github.com/kherve/classplan/core/timetable"
)

// LessonRow is one assigned (or still unassigned) lesson in the report.
type LessonRow struct {
	ID           string `json:"id"`
	Subject      string `json:"subject"`
	Teacher      string `json:"teacher"`
	StudentGroup string `json:"student_group"`
	Day          string `json:"day,omitempty"`
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
	Room         string `json:"room,omitempty"`
}

// ConstraintRow is one constraint's isolated contribution.
type ConstraintRow struct {
	Name string `json:"name"`
	Hard int    `json:"hard"`
	Soft int    `json:"soft"`
}

// Report is the JSON document handed to the reporting collaborator.
type Report struct {
	Score       string          `json:"score"`
	Hard        int             `json:"hard"`
	Soft        int             `json:"soft"`
	Feasible    bool            `json:"feasible"`
	Constraints []ConstraintRow `json:"constraints"`
	Lessons     []LessonRow     `json:"lessons"`
}

// NewReport assembles the report from a solved solution, re-running each
// constraint independently for the breakdown.
func NewReport(s *model.Solution) Report {
	analysis := timetable.Analyze(s)
	names := lo.Keys(analysis.Constraints)
	sort.Strings(names)
	constraints := lo.Map(names, func(name string, _ int) ConstraintRow {
		impact := analysis.Constraints[name]
		return ConstraintRow{Name: name, Hard: impact.Hard, Soft: impact.Soft}
	})
	rows := lo.Map(sortedLessons(s), func(l *model.Lesson, _ int) LessonRow {
		row := LessonRow{
			ID:           l.ID,
			Subject:      l.Subject,
			Teacher:      l.Teacher,
			StudentGroup: l.StudentGroup,
		}
		if t := l.Timeslot(); t != nil {
			row.Day = strings.ToUpper(t.Day.String())
			row.Start = t.Start.String()
			row.End = t.End.String()
		}
		if r := l.Room(); r != nil {
			row.Room = r.Name
		}
		return row
	})
	return Report{
		Score:       analysis.Total.String(),
		Hard:        analysis.Total.Hard,
		Soft:        analysis.Total.Soft,
		Feasible:    analysis.Total.Feasible(),
		Constraints: constraints,
		Lessons:     rows,
	}
}

// WriteJSON writes the full report to w.
func WriteJSON(w io.Writer, s *model.Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(s))
}

// WriteCSV writes one row per lesson to w.
func WriteCSV(w io.Writer, s *model.Solution) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"lesson_id", "subject", "teacher", "student_group", "day", "start", "end", "room"}); err != nil {
		return err
	}
	for _, row := range NewReport(s).Lessons {
		rec := []string{row.ID, row.Subject, row.Teacher, row.StudentGroup, row.Day, row.Start, row.End, row.Room}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// sortedLessons orders lessons by day, start time, room and ID so reports
// are stable regardless of search order.
func sortedLessons(s *model.Solution) []*model.Lesson {
	lessons := append([]*model.Lesson(nil), s.Lessons...)
	sort.SliceStable(lessons, func(i, j int) bool {
		a, b := lessons[i], lessons[j]
		ta, tb := a.Timeslot(), b.Timeslot()
		switch {
		case ta == nil && tb != nil:
			return false
		case ta != nil && tb == nil:
			return true
		case ta != nil && tb != nil:
			if ta.Day != tb.Day {
				return ta.Day < tb.Day
			}
			if ta.Start != tb.Start {
				return ta.Start < tb.Start
			}
		}
		ra, rb := a.Room(), b.Room()
		if ra != nil && rb != nil && ra.Name != rb.Name {
			return ra.Name < rb.Name
		}
		return a.ID < b.ID
	})
	return lessons
}
