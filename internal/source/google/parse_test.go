package google

import (
	"errors"
	"testing"

	"contabilidad/internal/core"
)

func TestParseMovements(t *testing.T) {
	values := [][]interface{}{
		{"Date", "ID", "Title", "Category", "Amount"},
		{"01 Feb", 1.0, "Sueldo", "INCOME", 2000.0},
		{"02 Feb", "2", "Supermercado", "expense", "150,5"},
		{},
		{"03 Feb", 3.0, "Préstamo a Juan", "LOAN", 50.0},
		{"04 Feb", 4.0, "Transferencia", "TRANSFER", 10.0},
		{"05 Feb", "x", "Sin id", "DEBT", 10.0},
		{"06 Feb", 1.0, "Repetido", "DEBT", 10.0},
		{"07 Feb", 6.0, "Negativo", "EXPENSE", -3.0},
		{"15 Feb", 5.0, "Internet (Futuro)", "FUTURE_PAYMENT", 40.0},
	}
	got, skipped, err := parseMovements(values)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 movements, got %d: %+v", len(got), got)
	}
	if got[1].Amount.Cents != 15050 || got[1].Category != core.Expense {
		t.Fatalf("unexpected second movement %+v", got[1])
	}
	if got[0].Amount.Cents != 200000 {
		t.Fatalf("unexpected numeric amount %+v", got[0])
	}
	if got[3].ID != 5 || got[3].Category != core.FuturePayment {
		t.Fatalf("unexpected order %+v", got)
	}

	if len(skipped) != 4 {
		t.Fatalf("expected 4 skipped rows, got %v", skipped)
	}
	if !errors.Is(skipped[3], core.ErrInvalidAmount) {
		t.Fatalf("expected negative amount rejected, got %v", skipped[3])
	}
	if skipped[0].Row != 6 || !errors.Is(skipped[0], core.ErrUnknownCategory) {
		t.Fatalf("expected row 6 unknown category, got %v", skipped[0])
	}
	if !errors.Is(skipped[1], core.ErrInvalidID) {
		t.Fatalf("expected invalid id, got %v", skipped[1])
	}
}

func TestParseMovementsMissingHeader(t *testing.T) {
	_, _, err := parseMovements([][]interface{}{{"ID", "Title", "Amount"}})
	if err == nil {
		t.Fatalf("expected header error")
	}
}

func TestParseMovementsEmpty(t *testing.T) {
	got, skipped, err := parseMovements(nil)
	if err != nil || got != nil || skipped != nil {
		t.Fatalf("expected empty result, got %v %v %v", got, skipped, err)
	}
}
