package report

import (
	"fmt"
	"time"

	"github.com/cleared-dev/ledger/internal/model"
)

// Window is an inclusive range of calendar dates.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", model.FormatDate(w.Start), model.FormatDate(w.End))
}

// MonthToDate runs from the first of today's month through today.
func MonthToDate(today time.Time) Window {
	today = model.Day(today)
	return Window{Start: firstOfMonth(today), End: today}
}

// PreviousMonth covers the whole calendar month before today's.
func PreviousMonth(today time.Time) Window {
	start := firstOfMonth(model.Day(today)).AddDate(0, -1, 0)
	return Window{Start: start, End: start.AddDate(0, 1, -1)}
}

// YearToDate runs from January 1 of today's year through today.
func YearToDate(today time.Time) Window {
	today = model.Day(today)
	return Window{Start: time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), End: today}
}

// PreviousYear covers January 1 through December 31 of the year before today's.
func PreviousYear(today time.Time) Window {
	year := today.Year() - 1
	return Window{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// firstOfMonth must be given a date already normalized by model.Day.
// Stepping months from day 1 never overflows into the following month.
func firstOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}
