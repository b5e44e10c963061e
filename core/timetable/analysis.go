package timetable

import "github.com/kherve/classplan/core/model"

// Analysis is the per-constraint score breakdown consumed by reporting.
// Each constraint's contribution is computed in isolation against the final
// assignment, not cumulatively.
type Analysis struct {
	Constraints map[string]model.Score
	Total       model.Score
}

// Analyze re-runs every constraint independently over the solution and
// returns its isolated contribution along with the aggregate score.
func Analyze(s *model.Solution) Analysis {
	a := Analysis{Constraints: make(map[string]model.Score, 6)}
	for _, c := range All() {
		impact := c.Evaluate(s.Lessons)
		a.Constraints[c.Name] = impact
		a.Total = a.Total.Add(impact)
	}
	return a
}
