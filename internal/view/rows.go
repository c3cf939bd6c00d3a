// Package view turns movements into what the home screen shows: list rows,
// the balance card, the create menu and the filter chips.
package view

import (
	"fmt"

	"contabilidad/internal/core"
	"contabilidad/internal/nav"
)

// Formatter renders amounts. *format.Formatter satisfies it.
type Formatter interface {
	ToCurrencyString(amount float64) (string, error)
	ToFixedDecimalString(amount float64) string
}

// Row is one line of the movement list.
type Row struct {
	ID             int64                 `json:"id"`
	Title          string                `json:"title"`
	Date           string                `json:"date"`
	Category       core.MovementCategory `json:"category"`
	Classification core.Classification   `json:"classification"`
	AmountText     string                `json:"amount_text"`
	AmountDecimal  string                `json:"amount_decimal"`
	AmountColor    string                `json:"amount_color"`
	EditRoute      string                `json:"edit_route"`
	DetailRoute    string                `json:"detail_route"`
}

// BuildRow renders a single movement.
func BuildRow(m core.Movement, f Formatter) (Row, error) {
	cl, err := core.Classify(m.Category)
	if err != nil {
		return Row{}, fmt.Errorf("movement %d: %w", m.ID, err)
	}
	amount := m.Amount.Value()
	text, err := f.ToCurrencyString(amount)
	if err != nil {
		return Row{}, fmt.Errorf("movement %d: %w", m.ID, err)
	}
	return Row{
		ID:             m.ID,
		Title:          m.Title,
		Date:           m.Date,
		Category:       m.Category,
		Classification: cl,
		AmountText:     cl.Sign.Prefix() + " " + text,
		AmountDecimal:  f.ToFixedDecimalString(amount),
		AmountColor:    cl.Sign.AmountColor(),
		EditRoute:      nav.EditMovementRoute(m.ID),
		DetailRoute:    nav.MovementDetailRoute(m.ID),
	}, nil
}

// BuildRows renders movements in order. The first failure aborts.
func BuildRows(movements []core.Movement, f Formatter) ([]Row, error) {
	rows := make([]Row, 0, len(movements))
	for _, m := range movements {
		r, err := BuildRow(m, f)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// ListHeading is the title above the list.
func ListHeading(state core.FilterState) string {
	if state.Selected == nil {
		return "Movimientos recientes"
	}
	return "Resultados del filtro"
}
