package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the layout of the date column in the ledger file.
const DateFormat = "2006-01-02"

// Transaction is a single ledger row. Positive amounts are deposits,
// negative amounts are payments.
type Transaction struct {
	Date        time.Time // midnight UTC, see Day
	Time        TimeOfDay
	Description string
	Vendor      string
	Amount      decimal.Decimal
}

// IsDeposit reports whether the transaction brings money in.
func (t Transaction) IsDeposit() bool { return t.Amount.IsPositive() }

// IsPayment reports whether the transaction sends money out.
func (t Transaction) IsPayment() bool { return t.Amount.IsNegative() }

// Before reports whether t sorts before other on the (date, time) key.
func (t Transaction) Before(other Transaction) bool {
	if !t.Date.Equal(other.Date) {
		return t.Date.Before(other.Date)
	}
	return t.Time.Compare(other.Time) < 0
}

// Equal compares every field; amounts are compared by value, so 1.5 equals 1.50.
func (t Transaction) Equal(other Transaction) bool {
	return t.Date.Equal(other.Date) &&
		t.Time == other.Time &&
		t.Description == other.Description &&
		t.Vendor == other.Vendor &&
		t.Amount.Equal(other.Amount)
}

// Day truncates t to its calendar date at midnight UTC.
// The wall-clock date of t is kept; the zone is dropped.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(DateFormat)
}
