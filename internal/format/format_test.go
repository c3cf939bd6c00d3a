package format

import (
	"errors"
	"math"
	"strings"
	"testing"

	"contabilidad/internal/core"
)

func TestToFixedDecimalString(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{150.5, "150.50"},
		{0, "0.00"},
		{2000, "2000.00"},
		{40, "40.00"},
	}
	for _, tc := range cases {
		if got := ToFixedDecimalString(tc.in); got != tc.want {
			t.Errorf("ToFixedDecimalString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToFixedDecimalStringLocaleSeparator(t *testing.T) {
	f, err := New("de-DE", "")
	if err != nil {
		t.Fatalf("new formatter: %v", err)
	}
	if got := f.ToFixedDecimalString(150.5); got != "150,50" {
		t.Fatalf("expected 150,50 got %q", got)
	}
}

func TestToFixedDecimalStringNegativeZero(t *testing.T) {
	for _, v := range []float64{-0.001, math.Copysign(0, -1), -0.004} {
		if got := ToFixedDecimalString(v); got != "0.00" {
			t.Fatalf("ToFixedDecimalString(%v) expected 0.00 got %q", v, got)
		}
	}
	if got := ToFixedDecimalString(-0.01); got != "-0.01" {
		t.Fatalf("expected -0.01 got %q", got)
	}
}

func TestToCurrencyStringLocale(t *testing.T) {
	tests := []struct {
		locale   string
		currency string
		amount   float64
		want     string
	}{
		{"de-DE", "", 1234.5, "1.234,50\u00a0€"},
		{"es-ES", "", 1234.5, "1.234,50\u00a0€"},
		{"es-ES", "", -150.5, "-150,50\u00a0€"},
		{"es-MX", "", 1234.5, "$1,234.50"},
		{"en-US", "EUR", 1234.5, "€1,234.50"},
		{"en-US", "", 1234567.891, "$1,234,567.89"},
	}
	for _, tt := range tests {
		f, err := New(tt.locale, tt.currency)
		if err != nil {
			t.Fatalf("new formatter %s: %v", tt.locale, err)
		}
		got, err := f.ToCurrencyString(tt.amount)
		if err != nil {
			t.Fatalf("%s %v: %v", tt.locale, tt.amount, err)
		}
		if got != tt.want {
			t.Fatalf("%s %v: expected %q got %q", tt.locale, tt.amount, tt.want, got)
		}
	}
}

func TestCurrencyAndDecimalShareSeparator(t *testing.T) {
	for _, locale := range []string{"de-DE", "es-ES", "fr-FR", "en-US"} {
		f, err := New(locale, "")
		if err != nil {
			t.Fatalf("new formatter %s: %v", locale, err)
		}
		fixed := f.ToFixedDecimalString(150.5)
		sep := strings.TrimSuffix(strings.TrimPrefix(fixed, "150"), "50")
		cur, err := f.ToCurrencyString(150.5)
		if err != nil {
			t.Fatalf("%s: %v", locale, err)
		}
		if !strings.Contains(cur, "150"+sep+"50") {
			t.Fatalf("%s: currency %q does not use decimal separator %q", locale, cur, sep)
		}
	}
}

func TestToCurrencyString(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2000, "$2,000.00"},
		{150.5, "$150.50"},
		{0, "$0.00"},
		{0.29, "$0.29"},
	}
	for _, tc := range cases {
		got, err := ToCurrencyString(tc.in)
		if err != nil {
			t.Fatalf("ToCurrencyString(%v) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ToCurrencyString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToCurrencyStringRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), math.MaxFloat64} {
		_, err := ToCurrencyString(v)
		if !errors.Is(err, ErrInvalidAmount) || !errors.Is(err, core.ErrInvalidAmount) {
			t.Fatalf("ToCurrencyString(%v) expected ErrInvalidAmount, got %v", v, err)
		}
	}
}

func TestNew(t *testing.T) {
	f, err := New("", "")
	if err != nil {
		t.Fatalf("default locale: %v", err)
	}
	if f.CurrencyCode() != "USD" || f.Locale() != "en-US" {
		t.Fatalf("unexpected defaults: %s %s", f.Locale(), f.CurrencyCode())
	}

	f, err = New("es-MX", "")
	if err != nil {
		t.Fatalf("es-MX: %v", err)
	}
	if f.CurrencyCode() != "MXN" {
		t.Fatalf("expected MXN, got %s", f.CurrencyCode())
	}

	f, err = New("en-US", "eur")
	if err != nil {
		t.Fatalf("explicit currency: %v", err)
	}
	if f.CurrencyCode() != "EUR" {
		t.Fatalf("expected EUR, got %s", f.CurrencyCode())
	}

	if _, err := New("not a locale!!", ""); err == nil {
		t.Fatalf("expected locale parse error")
	}
	if _, err := New("en-US", "XYZ"); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
}
