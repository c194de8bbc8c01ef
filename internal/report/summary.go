package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

// Summary totals a set of transactions.
type Summary struct {
	Count    int
	Deposits decimal.Decimal // sum of positive amounts
	Payments decimal.Decimal // sum of negative amounts, itself negative
	Net      decimal.Decimal
}

// Summarize adds up deposits, payments and the net balance.
func Summarize(txns []model.Transaction) Summary {
	s := Summary{Deposits: decimal.Zero, Payments: decimal.Zero, Net: decimal.Zero}
	for _, t := range txns {
		s.Count++
		switch {
		case t.IsDeposit():
			s.Deposits = s.Deposits.Add(t.Amount)
		case t.IsPayment():
			s.Payments = s.Payments.Add(t.Amount)
		}
		s.Net = s.Net.Add(t.Amount)
	}
	return s
}
