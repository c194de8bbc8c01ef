package model

import (
	"cmp"
	"fmt"
	"time"
)

const timeFormat = "15:04:05"

// TimeOfDay is a wall-clock time with second precision and no date or zone.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// TimeOfDayOf returns the wall-clock time of t, dropping sub-second precision.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ParseTimeOfDay parses a 24-hour HH:MM:SS time.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parsing time %q: %w", s, err)
	}
	return TimeOfDayOf(t), nil
}

// String renders the time as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Compare returns -1, 0 or +1 depending on whether t is earlier than,
// equal to, or later than other.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	return cmp.Compare(t.seconds(), other.seconds())
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}
