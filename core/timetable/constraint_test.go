package timetable

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kherve/classplan/core/model"
)

type fixture struct {
	rooms     []*model.Room
	timeslots []*model.Timeslot
}

func newFixture() fixture {
	slot := func(day time.Weekday, start, end int) *model.Timeslot {
		return &model.Timeslot{Day: day, Start: model.TimeOfDay(start), End: model.TimeOfDay(end)}
	}
	return fixture{
		rooms: []*model.Room{{Name: "Room A"}, {Name: "Room B"}, {Name: "Room C"}},
		timeslots: []*model.Timeslot{
			slot(time.Monday, 510, 570),  // 08:30-09:30
			slot(time.Monday, 570, 630),  // 09:30-10:30, gap 0 after slot 0
			slot(time.Monday, 660, 720),  // 11:00-12:00, gap 30 after slot 1
			slot(time.Monday, 780, 840),  // 13:00-14:00, gap 60 after slot 2
			slot(time.Tuesday, 510, 570), // other day
		},
	}
}

func (f fixture) lesson(id, subject, teacher, group string, slot, room int) *model.Lesson {
	l := model.NewLesson(id, subject, teacher, group)
	if slot >= 0 {
		l.SetTimeslot(f.timeslots[slot])
	}
	if room >= 0 {
		l.SetRoom(f.rooms[room])
	}
	return l
}

func byName(t *testing.T, name string) Constraint {
	t.Helper()
	for _, c := range All() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("unknown constraint %q", name)
	return Constraint{}
}

func TestConstraintSetShape(t *testing.T) {
	all := All()
	require.Len(t, all, 6)
	for _, c := range all {
		if c.Kind == Hard {
			assert.NotZero(t, c.Weight.Hard, c.Name)
			assert.Zero(t, c.Weight.Soft, c.Name)
		} else {
			assert.Zero(t, c.Weight.Hard, c.Name)
			assert.NotZero(t, c.Weight.Soft, c.Name)
		}
	}
}

func TestRoomConflict(t *testing.T) {
	f := newFixture()
	c := byName(t, "Room conflict")

	t.Run("same timeslot and room", func(t *testing.T) {
		lessons := []*model.Lesson{
			f.lesson("l1", "Math", "Turing", "9th", 0, 0),
			f.lesson("l2", "Physics", "Curie", "10th", 0, 0),
		}
		assert.Equal(t, model.Score{Hard: -1}, c.Evaluate(lessons))
	})
	t.Run("different rooms", func(t *testing.T) {
		lessons := []*model.Lesson{
			f.lesson("l1", "Math", "Turing", "9th", 0, 0),
			f.lesson("l2", "Physics", "Curie", "10th", 0, 1),
		}
		assert.Equal(t, model.Score{}, c.Evaluate(lessons))
	})
	t.Run("unassigned lessons never match", func(t *testing.T) {
		lessons := []*model.Lesson{
			f.lesson("l1", "Math", "Turing", "9th", -1, 0),
			f.lesson("l2", "Physics", "Curie", "10th", -1, 0),
		}
		assert.Equal(t, model.Score{}, c.Evaluate(lessons))
	})
}

// k lessons sharing one (timeslot, room) must contribute -C(k,2) hard.
func TestRoomConflictPairScaling(t *testing.T) {
	f := newFixture()
	c := byName(t, "Room conflict")
	for k := 2; k <= 5; k++ {
		var lessons []*model.Lesson
		for i := 0; i < k; i++ {
			lessons = append(lessons, f.lesson(string(rune('a'+i)), "Math", "Turing", "9th", 0, 0))
		}
		want := -k * (k - 1) / 2
		assert.Equal(t, model.Score{Hard: want}, c.Evaluate(lessons), "k=%d", k)
	}
}

func TestTeacherConflict(t *testing.T) {
	f := newFixture()
	c := byName(t, "Teacher conflict")
	lessons := []*model.Lesson{
		f.lesson("l1", "Math", "Turing", "9th", 0, 0),
		f.lesson("l2", "Physics", "Turing", "10th", 0, 1),
		f.lesson("l3", "Chemistry", "Curie", "10th", 0, 2),
	}
	assert.Equal(t, model.Score{Hard: -1}, c.Evaluate(lessons))
}

func TestStudentGroupConflict(t *testing.T) {
	f := newFixture()
	c := byName(t, "Student group conflict")
	lessons := []*model.Lesson{
		f.lesson("l1", "Math", "Turing", "9th", 0, 0),
		f.lesson("l2", "Physics", "Curie", "9th", 0, 1),
		f.lesson("l3", "Chemistry", "Curie", "10th", 1, 2),
	}
	assert.Equal(t, model.Score{Hard: -1}, c.Evaluate(lessons))
}

func TestTeacherRoomStability(t *testing.T) {
	f := newFixture()
	c := byName(t, "Teacher room stability")

	lessons := []*model.Lesson{
		f.lesson("l1", "Math", "Turing", "9th", 0, 0),
		f.lesson("l2", "Math", "Turing", "10th", 1, 1),
		f.lesson("l3", "Math", "Turing", "9th", 2, 0),
	}
	// Pairs (l1,l2) and (l2,l3) differ in room; (l1,l3) shares Room A.
	assert.Equal(t, model.Score{Soft: -2}, c.Evaluate(lessons))
}

func TestTeacherTimeEfficiency(t *testing.T) {
	f := newFixture()
	c := byName(t, "Teacher time efficiency")

	cases := []struct {
		name       string
		slotA      int
		slotB      int
		wantReward int
	}{
		{"gap 0 minutes", 0, 1, 1},
		{"gap 30 minutes", 1, 2, 1},
		{"gap 60 minutes", 2, 3, 0},
		{"other day", 0, 4, 0},
		{"same timeslot is not adjacent", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lessons := []*model.Lesson{
				f.lesson("l1", "Math", "Turing", "9th", tc.slotA, 0),
				f.lesson("l2", "Physics", "Turing", "10th", tc.slotB, 1),
			}
			assert.Equal(t, model.Score{Soft: tc.wantReward}, c.Evaluate(lessons))
		})
	}
}

func TestStudentGroupSubjectVariety(t *testing.T) {
	f := newFixture()
	c := byName(t, "Student group subject variety")

	t.Run("consecutive same subject penalized", func(t *testing.T) {
		lessons := []*model.Lesson{
			f.lesson("l1", "Math", "Turing", "9th", 0, 0),
			f.lesson("l2", "Math", "Turing", "9th", 1, 0),
		}
		assert.Equal(t, model.Score{Soft: -1}, c.Evaluate(lessons))
	})
	t.Run("different subject ignored", func(t *testing.T) {
		lessons := []*model.Lesson{
			f.lesson("l1", "Math", "Turing", "9th", 0, 0),
			f.lesson("l2", "Physics", "Curie", "9th", 1, 0),
		}
		assert.Equal(t, model.Score{}, c.Evaluate(lessons))
	})
}

// A teacher with two adjacent lessons on the same day earns +1 soft from
// time efficiency; moving one lesson to another day removes the reward.
func TestAdjacencyRewardAppearsAndDisappears(t *testing.T) {
	f := newFixture()
	l1 := f.lesson("l1", "Math", "Turing", "9th", 0, 0)
	l2 := f.lesson("l2", "Physics", "Turing", "10th", 1, 0)
	s := model.NewSolution(f.rooms, f.timeslots, []*model.Lesson{l1, l2})

	assert.Equal(t, model.Score{Soft: 1}, Analyze(s).Total)

	l2.SetTimeslot(f.timeslots[4]) // Tuesday
	assert.Equal(t, model.Score{Soft: 0}, Analyze(s).Total)
}

func TestAnalyzeBreakdownSumsToTotal(t *testing.T) {
	f := newFixture()
	lessons := []*model.Lesson{
		f.lesson("l1", "Math", "Turing", "9th", 0, 0),
		f.lesson("l2", "Math", "Turing", "9th", 1, 0),
		f.lesson("l3", "Physics", "Curie", "9th", 1, 1),
		f.lesson("l4", "Chemistry", "Curie", "10th", 1, 1),
	}
	s := model.NewSolution(f.rooms, f.timeslots, lessons)

	a := Analyze(s)
	require.Len(t, a.Constraints, 6)
	var sum model.Score
	for _, impact := range a.Constraints {
		sum = sum.Add(impact)
	}
	assert.Equal(t, a.Total, sum)
}

// Scoring must not depend on the order lessons are listed in.
func TestScoreOrderInvariance(t *testing.T) {
	f := newFixture()
	lessons := []*model.Lesson{
		f.lesson("l1", "Math", "Turing", "9th", 0, 0),
		f.lesson("l2", "Math", "Turing", "9th", 1, 1),
		f.lesson("l3", "Physics", "Curie", "9th", 1, 0),
		f.lesson("l4", "Chemistry", "Curie", "10th", 2, 2),
		f.lesson("l5", "English", "Jones", "10th", 2, 2),
	}
	s := model.NewSolution(f.rooms, f.timeslots, lessons)
	want := Analyze(s).Total

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		rng.Shuffle(len(s.Lessons), func(a, b int) {
			s.Lessons[a], s.Lessons[b] = s.Lessons[b], s.Lessons[a]
		})
		assert.Equal(t, want, Analyze(s).Total)
	}
}

// Rescoring without intervening moves always yields the same result.
func TestScoreIdempotence(t *testing.T) {
	f := newFixture()
	lessons := []*model.Lesson{
		f.lesson("l1", "Math", "Turing", "9th", 0, 0),
		f.lesson("l2", "Math", "Turing", "9th", 0, 1),
	}
	s := model.NewSolution(f.rooms, f.timeslots, lessons)
	first := Analyze(s).Total
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Analyze(s).Total)
	}
}
