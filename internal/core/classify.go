package core

import "fmt"

// Sign is the display direction of a movement.
type Sign string

const (
	Credit Sign = "CREDIT"
	Debit  Sign = "DEBIT"
)

// Prefix is the character shown before the amount.
func (s Sign) Prefix() string {
	if s == Credit {
		return "+"
	}
	return "-"
}

// AmountColor is the color used for the amount text of a row.
func (s Sign) AmountColor() string {
	if s == Credit {
		return "#2E7D32"
	}
	return "#C62828"
}

// Classification is the visual mapping of a category. It is derived on
// demand and never stored alongside a movement.
type Classification struct {
	Sign       Sign   `json:"sign"`
	Icon       string `json:"icon"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// DEBT counts as money owed to the user and credits; LOAN is money the user
// lent out and debits.
var classifications = map[MovementCategory]Classification{
	Income:        {Sign: Credit, Icon: "arrow-up", Foreground: "#1B5E20", Background: "#E8F5E9"},
	Expense:       {Sign: Debit, Icon: "arrow-down", Foreground: "#B71C1C", Background: "#FFEBEE"},
	Loan:          {Sign: Debit, Icon: "output", Foreground: "#0D47A1", Background: "#E3F2FD"},
	Debt:          {Sign: Credit, Icon: "input", Foreground: "#E65100", Background: "#FFF3E0"},
	FuturePayment: {Sign: Debit, Icon: "schedule", Foreground: "#7B1FA2", Background: "#F3E5F5"},
}

// Classify maps a category to its sign, icon and colors.
func Classify(c MovementCategory) (Classification, error) {
	cl, ok := classifications[c]
	if !ok {
		return Classification{}, fmt.Errorf("classify %q: %w", string(c), ErrUnknownCategory)
	}
	return cl, nil
}
