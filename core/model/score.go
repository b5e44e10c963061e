package model

import "fmt"

// Score is the two-level solution quality measure. Hard counts constraint
// violations that make a timetable infeasible, Soft counts preference
// penalties and rewards. Comparison is lexicographic: any hard improvement
// outranks every soft difference.
type Score struct {
	Hard int
	Soft int
}

// Add returns the component-wise sum.
func (s Score) Add(o Score) Score { return Score{Hard: s.Hard + o.Hard, Soft: s.Soft + o.Soft} }

// Sub returns the component-wise difference.
func (s Score) Sub(o Score) Score { return Score{Hard: s.Hard - o.Hard, Soft: s.Soft - o.Soft} }

// Cmp compares lexicographically and returns -1, 0 or 1.
func (s Score) Cmp(o Score) int {
	switch {
	case s.Hard != o.Hard:
		if s.Hard > o.Hard {
			return 1
		}
		return -1
	case s.Soft != o.Soft:
		if s.Soft > o.Soft {
			return 1
		}
		return -1
	default:
		return 0
	}
}

// Better reports whether s strictly outranks o.
func (s Score) Better(o Score) bool { return s.Cmp(o) > 0 }

// Feasible reports whether no hard constraint is violated.
func (s Score) Feasible() bool { return s.Hard == 0 }

func (s Score) String() string { return fmt.Sprintf("%dhard/%dsoft", s.Hard, s.Soft) }
