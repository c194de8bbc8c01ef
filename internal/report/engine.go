package report

import (
	"fmt"
	"time"

	"github.com/cleared-dev/ledger/internal/clock"
	"github.com/cleared-dev/ledger/internal/model"
)

// Querier is the part of the ledger store reports are built on.
type Querier interface {
	ByDateRange(start, end time.Time) []model.Transaction
	ByVendor(name string) []model.Transaction
}

// Kind names a calendar-relative report.
type Kind string

const (
	KindMonthToDate   Kind = "month-to-date"
	KindPreviousMonth Kind = "previous-month"
	KindYearToDate    Kind = "year-to-date"
	KindPreviousYear  Kind = "previous-year"
)

// Kinds lists the calendar reports in menu order.
var Kinds = []Kind{KindMonthToDate, KindPreviousMonth, KindYearToDate, KindPreviousYear}

// Title is the heading shown above a report.
func (k Kind) Title() string {
	switch k {
	case KindMonthToDate:
		return "Month To Date"
	case KindPreviousMonth:
		return "Previous Month"
	case KindYearToDate:
		return "Year To Date"
	case KindPreviousYear:
		return "Previous Year"
	default:
		return string(k)
	}
}

// Engine computes report windows from its clock and queries the store.
// It holds no state of its own.
type Engine struct {
	store Querier
	clock clock.Clock
}

// NewEngine creates an Engine.
func NewEngine(store Querier, c clock.Clock) *Engine {
	return &Engine{store: store, clock: c}
}

// Window returns the date window kind covers as of the engine's today.
func (e *Engine) Window(kind Kind) (Window, error) {
	today := e.clock.Now()
	switch kind {
	case KindMonthToDate:
		return MonthToDate(today), nil
	case KindPreviousMonth:
		return PreviousMonth(today), nil
	case KindYearToDate:
		return YearToDate(today), nil
	case KindPreviousYear:
		return PreviousYear(today), nil
	default:
		return Window{}, fmt.Errorf("unknown report %q", kind)
	}
}

// Run returns the transactions for a calendar report, newest first.
func (e *Engine) Run(kind Kind) ([]model.Transaction, error) {
	w, err := e.Window(kind)
	if err != nil {
		return nil, err
	}
	return e.in(w), nil
}

// MonthToDate returns this month's transactions up to today.
func (e *Engine) MonthToDate() []model.Transaction {
	return e.in(MonthToDate(e.clock.Now()))
}

// PreviousMonth returns last month's transactions.
func (e *Engine) PreviousMonth() []model.Transaction {
	return e.in(PreviousMonth(e.clock.Now()))
}

// YearToDate returns this year's transactions up to today.
func (e *Engine) YearToDate() []model.Transaction {
	return e.in(YearToDate(e.clock.Now()))
}

// PreviousYear returns last year's transactions.
func (e *Engine) PreviousYear() []model.Transaction {
	return e.in(PreviousYear(e.clock.Now()))
}

// Vendor returns transactions for a vendor, matched case-insensitively.
func (e *Engine) Vendor(name string) []model.Transaction {
	return e.store.ByVendor(name)
}

// Custom returns transactions dated from start through end inclusive.
func (e *Engine) Custom(start, end time.Time) []model.Transaction {
	return e.store.ByDateRange(start, end)
}

func (e *Engine) in(w Window) []model.Transaction {
	return e.store.ByDateRange(w.Start, w.End)
}
