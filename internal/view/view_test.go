package view

import (
	"errors"
	"testing"

	"contabilidad/internal/core"
	"contabilidad/internal/format"
	"contabilidad/internal/source/memory"
)

type failingFormatter struct{}

func (failingFormatter) ToCurrencyString(float64) (string, error) {
	return "", format.ErrInvalidAmount
}
func (failingFormatter) ToFixedDecimalString(float64) string { return "" }

func TestBuildRows(t *testing.T) {
	rows, err := BuildRows(memory.Sample(), format.Default())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}

	tests := []struct {
		idx     int
		text    string
		decimal string
		color   string
		icon    string
	}{
		{0, "+ $2,000.00", "2000.00", "#2E7D32", "arrow-up"},
		{1, "- $150.00", "150.00", "#C62828", "arrow-down"},
		{2, "- $50.00", "50.00", "#C62828", "output"},
		{3, "+ $100.00", "100.00", "#2E7D32", "input"},
		{4, "- $40.00", "40.00", "#C62828", "schedule"},
	}
	for _, tt := range tests {
		r := rows[tt.idx]
		if r.AmountText != tt.text || r.AmountDecimal != tt.decimal || r.AmountColor != tt.color || r.Classification.Icon != tt.icon {
			t.Errorf("row %d = %+v", tt.idx, r)
		}
	}
	if rows[0].EditRoute != "edit_movement/1" || rows[0].DetailRoute != "movement_detail/1" {
		t.Errorf("unexpected routes %q %q", rows[0].EditRoute, rows[0].DetailRoute)
	}
}

func TestBuildRowsAborts(t *testing.T) {
	bad := []core.Movement{{ID: 9, Title: "x", Category: "TRANSFER"}}
	if _, err := BuildRows(bad, format.Default()); !errors.Is(err, core.ErrUnknownCategory) {
		t.Fatalf("expected unknown category, got %v", err)
	}
	if _, err := BuildRows(memory.Sample(), failingFormatter{}); !errors.Is(err, format.ErrInvalidAmount) {
		t.Fatalf("expected formatter error, got %v", err)
	}
	rows, err := BuildRows(nil, format.Default())
	if err != nil || len(rows) != 0 {
		t.Fatalf("empty input: %v %v", rows, err)
	}
}

func TestSummarize(t *testing.T) {
	b, err := Summarize(memory.Sample(), format.Default())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if b.CreditCents != 210000 || b.DebitCents != 24000 || b.TotalCents != 186000 {
		t.Fatalf("unexpected totals %+v", b)
	}
	if b.Total != "$1,860.00" || b.Credit != "$2,100.00" || b.Debit != "$240.00" {
		t.Fatalf("unexpected text %+v", b)
	}
}

func TestMenu(t *testing.T) {
	opts := Menu()
	want := []string{"Ingreso", "Gasto", "Pago Futuro", "Me deben", "Yo debo"}
	if len(opts) != len(want) {
		t.Fatalf("expected %d options, got %d", len(want), len(opts))
	}
	for i, w := range want {
		if opts[i].Label != w {
			t.Errorf("option %d = %q, want %q", i, opts[i].Label, w)
		}
	}
	if opts[2].Category != nil || opts[2].Route != "" {
		t.Errorf("future payment entry should not navigate: %+v", opts[2])
	}
	if opts[3].Route != "add_movement/LOAN" || opts[3].Color != "#2196F3" {
		t.Errorf("unexpected loan option %+v", opts[3])
	}
}

func TestChips(t *testing.T) {
	all := Chips(core.FilterState{})
	if len(all) != 6 || all[0].Label != "Todos" || !all[0].Selected {
		t.Fatalf("unexpected chips %+v", all)
	}
	seen := map[core.MovementCategory]bool{}
	for _, c := range all[1:] {
		seen[*c.Category] = true
	}
	for _, c := range core.AllCategories() {
		if !seen[c] {
			t.Errorf("missing chip for %s", c)
		}
	}

	debt := Chips(core.Select(core.Debt))
	for _, c := range debt {
		if c.Selected != (c.Category != nil && *c.Category == core.Debt) {
			t.Errorf("chip %q selected=%v", c.Label, c.Selected)
		}
	}
}

func TestListHeading(t *testing.T) {
	if ListHeading(core.FilterState{}) != "Movimientos recientes" {
		t.Fatalf("unexpected heading for all")
	}
	if ListHeading(core.Select(core.Loan)) != "Resultados del filtro" {
		t.Fatalf("unexpected heading for filter")
	}
}
