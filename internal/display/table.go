package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/ledger/internal/model"
	"github.com/cleared-dev/ledger/internal/report"
)

// HeaderRow labels the columns produced by Row.
const HeaderRow = "Date         Time       Description               Vendor          Amount"

// EmptyMessage is printed instead of a table when there is nothing to show.
const EmptyMessage = "No transactions found."

const (
	descWidth   = 25
	vendorWidth = 15
	ellipsis    = "..."
)

// Row formats one transaction as a fixed-width line.
func Row(t model.Transaction) string {
	return fmt.Sprintf("%s  %s  %s  %s  %s",
		model.FormatDate(t.Date),
		t.Time,
		fit(t.Description, descWidth),
		fit(t.Vendor, vendorWidth),
		t.Amount.StringFixed(2),
	)
}

// Render writes a header and one row per transaction, or EmptyMessage.
func Render(w io.Writer, txns []model.Transaction) error {
	if len(txns) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	if _, err := fmt.Fprintln(w, HeaderRow); err != nil {
		return err
	}
	for _, t := range txns {
		if _, err := fmt.Fprintln(w, Row(t)); err != nil {
			return err
		}
	}
	return nil
}

// RenderTitled writes a "=== title ===" banner above the table.
func RenderTitled(w io.Writer, title string, txns []model.Transaction) error {
	if _, err := fmt.Fprintf(w, "\n=== %s ===\n", title); err != nil {
		return err
	}
	return Render(w, txns)
}

// RenderSummary writes totals below a table.
func RenderSummary(w io.Writer, s report.Summary) error {
	_, err := fmt.Fprintf(w, "%d transactions  deposits %s  payments %s  net %s\n",
		s.Count, s.Deposits.StringFixed(2), s.Payments.StringFixed(2), s.Net.StringFixed(2))
	return err
}

// fit truncates s with an ellipsis when it is longer than width runes and
// pads it with spaces when it is shorter.
func fit(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-len(ellipsis)]) + ellipsis
	}
	return s + strings.Repeat(" ", width-len(r))
}
