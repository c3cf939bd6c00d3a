package view

import (
	"fmt"

	"contabilidad/internal/core"
)

// Balance is the summary card on top of the list.
type Balance struct {
	TotalCents  int64  `json:"total_cents"`
	CreditCents int64  `json:"credit_cents"`
	DebitCents  int64  `json:"debit_cents"`
	Total       string `json:"total"`
	Credit      string `json:"credit"`
	Debit       string `json:"debit"`
}

// Summarize totals credits and debits by the sign of each category.
// Total is credits minus debits and may be negative.
func Summarize(movements []core.Movement, f Formatter) (Balance, error) {
	var b Balance
	for _, m := range movements {
		cl, err := core.Classify(m.Category)
		if err != nil {
			return Balance{}, fmt.Errorf("movement %d: %w", m.ID, err)
		}
		if cl.Sign == core.Credit {
			b.CreditCents += m.Amount.Cents
		} else {
			b.DebitCents += m.Amount.Cents
		}
	}
	b.TotalCents = b.CreditCents - b.DebitCents

	var err error
	if b.Total, err = f.ToCurrencyString(float64(b.TotalCents) / 100); err != nil {
		return Balance{}, err
	}
	if b.Credit, err = f.ToCurrencyString(float64(b.CreditCents) / 100); err != nil {
		return Balance{}, err
	}
	if b.Debit, err = f.ToCurrencyString(float64(b.DebitCents) / 100); err != nil {
		return Balance{}, err
	}
	return b, nil
}
