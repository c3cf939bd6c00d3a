package core

import (
	"errors"
	"strings"
	"testing"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 0}).Validate(); err != nil {
		t.Fatalf("expected zero to be valid, got %v", err)
	}
	if err := (Money{Cents: -1}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestMovementValidate(t *testing.T) {
	good := Movement{ID: 1, Title: "Sueldo", Amount: Money{Cents: 200000}, Date: "01 Feb", Category: Income}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		m    Movement
		want error
	}{
		{Movement{ID: -1, Title: "a", Category: Income}, ErrInvalidID},
		{Movement{ID: 1, Title: "  ", Category: Income}, ErrEmptyTitle},
		{Movement{ID: 1, Title: "a", Amount: Money{Cents: -5}, Category: Income}, ErrInvalidAmount},
		{Movement{ID: 1, Title: "a", Category: "TRANSFER"}, ErrUnknownCategory},
		{Movement{ID: 1, Title: "a"}, ErrUnknownCategory},
	}
	for i, tc := range bads {
		if err := tc.m.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}

	long := good
	long.Title = strings.Repeat("x", 201)
	if err := long.Validate(); err == nil {
		t.Fatalf("expected error for long title")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories() {
		got, err := ParseCategory(strings.ToLower(string(c)))
		if err != nil || got != c {
			t.Fatalf("%s: got %q err=%v", c, got, err)
		}
	}
	for _, in := range []string{"", "FUTURE_PAY", "transfer", "income "} {
		got, err := ParseCategory(in)
		if in == "income " {
			if err != nil || got != Income {
				t.Fatalf("%q: expected INCOME, got %q err=%v", in, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrUnknownCategory) {
			t.Fatalf("%q: expected ErrUnknownCategory, got %v", in, err)
		}
	}
}
