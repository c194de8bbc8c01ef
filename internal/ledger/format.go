package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

// Header is the first line of every ledger file.
const Header = "date|time|description|vendor|amount"

const (
	delimiter    = "|"
	headerPrefix = "date" + delimiter
	numFields    = 5
	colDate      = 0
	colTime      = 1
	colDesc      = 2
	colVendor    = 3
	colAmount    = 4

	// minAmountPlaces keeps whole amounts readable as 1500.00.
	minAmountPlaces = 2
)

// MarshalTransaction converts a Transaction to a ledger line (no newline).
// Description and vendor are written as-is: a "|" inside them corrupts the row.
func MarshalTransaction(t model.Transaction) string {
	row := make([]string, numFields)
	row[colDate] = model.FormatDate(t.Date)
	row[colTime] = t.Time.String()
	row[colDesc] = t.Description
	row[colVendor] = t.Vendor
	row[colAmount] = FormatAmount(t.Amount)
	return strings.Join(row, delimiter)
}

// FormatAmount renders an amount with at least two fractional digits and
// never fewer than the value carries, so parsing it back is lossless.
func FormatAmount(d decimal.Decimal) string {
	places := max(int32(minAmountPlaces), -d.Exponent())
	return d.StringFixed(places)
}

// UnmarshalTransaction converts a ledger line to a Transaction.
// Fields past the fifth are ignored.
func UnmarshalTransaction(line string) (model.Transaction, error) {
	record := strings.Split(line, delimiter)
	if len(record) < numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := model.ParseDate(record[colDate])
	if err != nil {
		return model.Transaction{}, err
	}

	tod, err := model.ParseTimeOfDay(record[colTime])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Transaction{
		Date:        date,
		Time:        tod,
		Description: record[colDesc],
		Vendor:      record[colVendor],
		Amount:      amount,
	}, nil
}

// ReadTransactions decodes a ledger file. Header and blank lines are skipped.
// Lines that fail to decode are returned in skipped instead of failing the read;
// err is only set for I/O failures.
func ReadTransactions(r io.Reader) (txns []model.Transaction, skipped []MalformedRecordError, err error) {
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, nil, fmt.Errorf("reading line %d: %w", lineNo, readErr)
		}
		line = strings.TrimRight(line, "\r\n")

		switch {
		case strings.TrimSpace(line) == "":
		case strings.HasPrefix(line, headerPrefix):
		default:
			txn, parseErr := UnmarshalTransaction(line)
			if parseErr != nil {
				skipped = append(skipped, MalformedRecordError{Line: lineNo, Text: line, Reason: parseErr})
				break
			}
			txns = append(txns, txn)
		}

		if readErr != nil {
			return txns, skipped, nil
		}
	}
}

// WriteTransactions writes the header followed by one line per transaction.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if _, err := bw.WriteString(MarshalTransaction(t) + "\n"); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return bw.Flush()
}
