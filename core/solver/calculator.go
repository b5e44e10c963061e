package solver

import (
	"github.com/kherve/classplan/core/model"
	"github.com/kherve/classplan/core/timetable"
)

// Calculator evaluates the constraint set over a solution. Full performs a
// complete O(n²) pair scan; Delta recomputes only the contribution of the
// lessons a move touches, before and after applying it. Both paths must
// agree: Full(apply(s, m)) == Full(s) + Delta(s, m).
type Calculator struct {
	constraints []timetable.Constraint
}

// NewCalculator returns a calculator over the standard constraint set.
func NewCalculator() *Calculator {
	return &Calculator{constraints: timetable.All()}
}

// Full recomputes the score of the whole solution from scratch.
func (c *Calculator) Full(s *model.Solution) model.Score {
	var total model.Score
	for _, ct := range c.constraints {
		total = total.Add(ct.Evaluate(s.Lessons))
	}
	return total
}

// Delta computes the score change the move would cause without leaving it
// applied. The move is applied, the touched contribution re-measured and the
// move undone again, so the solution is returned in its original state.
func (c *Calculator) Delta(s *model.Solution, m Move) model.Score {
	affected := m.Affected()
	before := c.partial(s, affected)
	m.Apply(s)
	after := c.partial(s, affected)
	m.Undo(s)
	return after.Sub(before)
}

// partial sums the contribution of every pair that involves at least one
// affected lesson. Pairs with both endpoints affected are counted exactly
// once per direction, keyed on the affected slice position.
func (c *Calculator) partial(s *model.Solution, affected []*model.Lesson) model.Score {
	pos := make(map[*model.Lesson]int, len(affected))
	for i, l := range affected {
		pos[l] = i
	}
	var total model.Score
	for _, ct := range c.constraints {
		for i, a := range affected {
			for _, b := range s.Lessons {
				if b == a {
					continue
				}
				if j, both := pos[b]; both && j < i {
					continue // pair already counted from b's perspective
				}
				if ct.Match(a, b) {
					total = total.Add(ct.Weight)
				}
				if ct.Ordered && ct.Match(b, a) {
					total = total.Add(ct.Weight)
				}
			}
		}
	}
	return total
}
