package solver

import (
	"math/rand"

	"github.com/kherve/classplan/core/model"
)

// Move-kind selection weights. Every kind stays reachable so the search
// cannot stagnate in a single neighborhood.
const (
	timeslotMoveWeight = 0.4
	roomMoveWeight     = 0.2
)

// Generator produces random candidate moves drawn from the solution's own
// fact sets. It is deterministic for a given seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded for reproducible runs.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a candidate move, or nil when the solution admits none
// (for example a single lesson with a single room and timeslot).
func (g *Generator) Next(s *model.Solution) Move {
	if len(s.Lessons) == 0 {
		return nil
	}
	roll := g.rng.Float64()
	order := [3]int{0, 1, 2}
	switch {
	case roll < timeslotMoveWeight:
	case roll < timeslotMoveWeight+roomMoveWeight:
		order = [3]int{1, 0, 2}
	default:
		order = [3]int{2, 0, 1}
	}
	for _, kind := range order {
		var m Move
		switch kind {
		case 0:
			m = g.changeTimeslot(s)
		case 1:
			m = g.changeRoom(s)
		case 2:
			m = g.swap(s)
		}
		if m != nil {
			return m
		}
	}
	return nil
}

func (g *Generator) changeTimeslot(s *model.Solution) Move {
	l := s.Lessons[g.rng.Intn(len(s.Lessons))]
	candidates := make([]*model.Timeslot, 0, len(s.Timeslots))
	for _, t := range s.Timeslots {
		if t != l.Timeslot() {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return &ChangeTimeslotMove{Lesson: l, To: candidates[g.rng.Intn(len(candidates))]}
}

func (g *Generator) changeRoom(s *model.Solution) Move {
	l := s.Lessons[g.rng.Intn(len(s.Lessons))]
	candidates := make([]*model.Room, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		if r != l.Room() {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return &ChangeRoomMove{Lesson: l, To: candidates[g.rng.Intn(len(candidates))]}
}

func (g *Generator) swap(s *model.Solution) Move {
	if len(s.Lessons) < 2 {
		return nil
	}
	i := g.rng.Intn(len(s.Lessons))
	j := g.rng.Intn(len(s.Lessons) - 1)
	if j >= i {
		j++
	}
	a, b := s.Lessons[i], s.Lessons[j]
	// Swapping identical bindings is a no-op move; not worth evaluating.
	if a.Timeslot() == b.Timeslot() && a.Room() == b.Room() {
		return nil
	}
	return &SwapMove{A: a, B: b}
}
