package view

import (
	"contabilidad/internal/core"
	"contabilidad/internal/nav"
)

// Title is shown in the top bar of the home screen.
const Title = "Mi Contabilidad"

// MenuOption is an entry of the floating create menu. Category is nil for
// entries that do not open a create screen yet.
type MenuOption struct {
	Label    string                 `json:"label"`
	Icon     string                 `json:"icon"`
	Color    string                 `json:"color"`
	Category *core.MovementCategory `json:"category"`
	Route    string                 `json:"route,omitempty"`
}

// Chip is a filter toggle. Category is nil for the "show all" chip.
type Chip struct {
	Label    string                 `json:"label"`
	Category *core.MovementCategory `json:"category"`
	Selected bool                   `json:"selected"`
}

func categoryPtr(c core.MovementCategory) *core.MovementCategory {
	return &c
}

// Menu returns the create options in display order.
func Menu() []MenuOption {
	opts := []MenuOption{
		{Label: "Ingreso", Icon: "arrow-up", Color: "#4CAF50", Category: categoryPtr(core.Income)},
		{Label: "Gasto", Icon: "arrow-down", Color: "#F44336", Category: categoryPtr(core.Expense)},
		{Label: "Pago Futuro", Icon: "schedule", Color: "#9C27B0"},
		{Label: "Me deben", Icon: "upload", Color: "#2196F3", Category: categoryPtr(core.Loan)},
		{Label: "Yo debo", Icon: "download", Color: "#FF9800", Category: categoryPtr(core.Debt)},
	}
	for i := range opts {
		if opts[i].Category != nil {
			opts[i].Route = nav.AddMovementRoute(opts[i].Category.String())
		}
	}
	return opts
}

var chipLabels = []struct {
	label    string
	category core.MovementCategory
}{
	{"Ingresos", core.Income},
	{"Gastos", core.Expense},
	{"Futuros", core.FuturePayment},
	{"Por Cobrar", core.Loan},
	{"Por Pagar", core.Debt},
}

// Chips returns the filter chips with the one matching state marked selected.
func Chips(state core.FilterState) []Chip {
	chips := make([]Chip, 0, len(chipLabels)+1)
	chips = append(chips, Chip{Label: "Todos", Selected: state.Selected == nil})
	for _, c := range chipLabels {
		chips = append(chips, Chip{
			Label:    c.label,
			Category: categoryPtr(c.category),
			Selected: state.Selected != nil && *state.Selected == c.category,
		})
	}
	return chips
}
