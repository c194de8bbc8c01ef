package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestWindows(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(time.Time) Window
		today time.Time
		want  Window
	}{
		{"month to date", MonthToDate, date(2024, 3, 5), Window{date(2024, 3, 1), date(2024, 3, 5)}},
		{"month to date on the first", MonthToDate, date(2024, 3, 1), Window{date(2024, 3, 1), date(2024, 3, 1)}},
		{"previous month leap February", PreviousMonth, date(2024, 3, 5), Window{date(2024, 2, 1), date(2024, 2, 29)}},
		{"previous month plain February", PreviousMonth, date(2023, 3, 31), Window{date(2023, 2, 1), date(2023, 2, 28)}},
		{"previous month across year", PreviousMonth, date(2024, 1, 15), Window{date(2023, 12, 1), date(2023, 12, 31)}},
		{"previous month 30 days", PreviousMonth, date(2024, 5, 31), Window{date(2024, 4, 1), date(2024, 4, 30)}},
		{"previous month century non-leap", PreviousMonth, date(2100, 3, 1), Window{date(2100, 2, 1), date(2100, 2, 28)}},
		{"year to date", YearToDate, date(2024, 3, 5), Window{date(2024, 1, 1), date(2024, 3, 5)}},
		{"year to date new year", YearToDate, date(2024, 1, 1), Window{date(2024, 1, 1), date(2024, 1, 1)}},
		{"previous year", PreviousYear, date(2024, 3, 5), Window{date(2023, 1, 1), date(2023, 12, 31)}},
		{"previous year from leap day", PreviousYear, date(2024, 2, 29), Window{date(2023, 1, 1), date(2023, 12, 31)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.today))
		})
	}
}

func TestWindows_DropTimeOfDay(t *testing.T) {
	today := time.Date(2024, 3, 5, 23, 59, 59, 0, time.FixedZone("UTC+9", 9*3600))
	assert.Equal(t, Window{date(2024, 3, 1), date(2024, 3, 5)}, MonthToDate(today))
	assert.Equal(t, Window{date(2024, 1, 1), date(2024, 3, 5)}, YearToDate(today))
}

func TestWindowString(t *testing.T) {
	assert.Equal(t, "2024-02-01..2024-02-29", PreviousMonth(date(2024, 3, 5)).String())
}
