package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/model"
)

func TestSummarize(t *testing.T) {
	txns := append(ledger.SeedTransactions(),
		model.Transaction{Amount: decimal.RequireFromString("0.00")},
		model.Transaction{Amount: decimal.RequireFromString("-10.50")},
	)

	s := Summarize(txns)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, "1500.00", s.Deposits.StringFixed(2))
	assert.Equal(t, "-100.00", s.Payments.StringFixed(2))
	assert.Equal(t, "1400.00", s.Net.StringFixed(2))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.Net.IsZero())
	assert.True(t, s.Deposits.IsZero())
	assert.True(t, s.Payments.IsZero())
}
