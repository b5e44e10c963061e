// Package datasource supplies initial problem instances to the solver: a
// JSON/YAML file loader and a generated demo dataset. All lessons arrive
// unassigned; assignment is the solver's job.
package datasource

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kherve/classplan/core/model"
)

type timeslotDoc struct {
	Day   string `json:"day" yaml:"day"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

type roomDoc struct {
	Name string `json:"name" yaml:"name"`
}

type lessonDoc struct {
	ID           string `json:"id" yaml:"id"`
	Subject      string `json:"subject" yaml:"subject"`
	Teacher      string `json:"teacher" yaml:"teacher"`
	StudentGroup string `json:"student_group" yaml:"student_group"`
}

type problemDoc struct {
	Timeslots []timeslotDoc `json:"timeslots" yaml:"timeslots"`
	Rooms     []roomDoc     `json:"rooms" yaml:"rooms"`
	Lessons   []lessonDoc   `json:"lessons" yaml:"lessons"`
}

// Load reads a problem file, JSON or YAML by extension.
func Load(path string) (*model.Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return Decode(f, "yaml")
	case ".json":
		return Decode(f, "json")
	default:
		return nil, fmt.Errorf("unsupported problem format: %s", ext)
	}
}

// Decode reads a problem document from r in the given format and assembles
// an unassigned, validated solution.
func Decode(r io.Reader, format string) (*model.Solution, error) {
	var doc problemDoc
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode problem: %w", err)
		}
	case "json":
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode problem: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported problem format: %s", format)
	}
	return doc.toSolution()
}

func (doc problemDoc) toSolution() (*model.Solution, error) {
	timeslots := make([]*model.Timeslot, 0, len(doc.Timeslots))
	for _, t := range doc.Timeslots {
		day, err := model.ParseWeekday(t.Day)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidProblem, err)
		}
		start, err := model.ParseTimeOfDay(t.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidProblem, err)
		}
		end, err := model.ParseTimeOfDay(t.End)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidProblem, err)
		}
		if end <= start {
			return nil, fmt.Errorf("%w: timeslot %s %s-%s ends before it starts",
				model.ErrInvalidProblem, t.Day, t.Start, t.End)
		}
		timeslots = append(timeslots, &model.Timeslot{Day: day, Start: start, End: end})
	}
	rooms := make([]*model.Room, 0, len(doc.Rooms))
	for _, r := range doc.Rooms {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: room without name", model.ErrInvalidProblem)
		}
		rooms = append(rooms, &model.Room{Name: r.Name})
	}
	lessons := make([]*model.Lesson, 0, len(doc.Lessons))
	for _, l := range doc.Lessons {
		lessons = append(lessons, model.NewLesson(l.ID, l.Subject, l.Teacher, l.StudentGroup))
	}
	sol := model.NewSolution(rooms, timeslots, lessons)
	if err := sol.Validate(); err != nil {
		return nil, err
	}
	return sol, nil
}

// WriteProblem serializes a solution's facts and lessons as a JSON problem
// document, the inverse of Decode. Assignments are not persisted.
func WriteProblem(w io.Writer, s *model.Solution) error {
	doc := problemDoc{
		Timeslots: make([]timeslotDoc, len(s.Timeslots)),
		Rooms:     make([]roomDoc, len(s.Rooms)),
		Lessons:   make([]lessonDoc, len(s.Lessons)),
	}
	for i, t := range s.Timeslots {
		doc.Timeslots[i] = timeslotDoc{
			Day:   strings.ToUpper(t.Day.String()),
			Start: t.Start.String(),
			End:   t.End.String(),
		}
	}
	for i, r := range s.Rooms {
		doc.Rooms[i] = roomDoc{Name: r.Name}
	}
	for i, l := range s.Lessons {
		doc.Lessons[i] = lessonDoc{
			ID:           l.ID,
			Subject:      l.Subject,
			Teacher:      l.Teacher,
			StudentGroup: l.StudentGroup,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
