package core

import (
	"fmt"
	"strings"
)

// MovementCategory is the closed set of movement kinds.
type MovementCategory string

const (
	Income        MovementCategory = "INCOME"
	Expense       MovementCategory = "EXPENSE"
	Loan          MovementCategory = "LOAN"
	Debt          MovementCategory = "DEBT"
	FuturePayment MovementCategory = "FUTURE_PAYMENT"
)

// AllCategories returns every category in display order.
func AllCategories() []MovementCategory {
	return []MovementCategory{Income, Expense, Loan, Debt, FuturePayment}
}

func (c MovementCategory) String() string {
	return string(c)
}

// IsValid reports whether c belongs to the closed set.
func (c MovementCategory) IsValid() bool {
	switch c {
	case Income, Expense, Loan, Debt, FuturePayment:
		return true
	default:
		return false
	}
}

// ParseCategory accepts a category name in any letter case. Anything outside
// the closed set is rejected with ErrUnknownCategory.
func ParseCategory(s string) (MovementCategory, error) {
	c := MovementCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}
