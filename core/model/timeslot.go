package model

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a "15:04" formatted string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// ParseWeekday parses a day name such as "MONDAY" or "Monday".
func ParseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

// Timeslot is an immutable problem fact identifying a teaching period.
// All timeslots of a problem have equal duration.
type Timeslot struct {
	Day   time.Weekday
	Start TimeOfDay
	End   TimeOfDay
}

func (t Timeslot) String() string {
	return fmt.Sprintf("%s %s-%s", strings.ToUpper(t.Day.String()), t.Start, t.End)
}
