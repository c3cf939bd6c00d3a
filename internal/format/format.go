// Package format renders amounts for display.
//
// Currency strings take the fraction digits and symbol of the currency from
// go-money, and the grouping and decimal separators and symbol position of
// the locale from golang.org/x/text. Fixed decimals use the locale's decimal
// separator.
package format

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"contabilidad/internal/core"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

var (
	// ErrInvalidAmount is core.ErrInvalidAmount so callers can check either name.
	ErrInvalidAmount       = core.ErrInvalidAmount
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// nbsp separates the amount from a trailing symbol.
const nbsp = "\u00a0"

// trailingSymbol lists languages that write the currency symbol after the
// amount. A non-empty region list restricts it to those regions.
var trailingSymbol = map[string][]string{
	"de": nil, "fr": nil, "it": nil, "nl": {"BE"},
	"es": {"ES"}, "pt": {"PT"}, "ca": nil,
	"pl": nil, "cs": nil, "sk": nil, "sl": nil, "hr": nil, "hu": nil, "ro": nil, "bg": nil,
	"ru": nil, "uk": nil, "lt": nil, "lv": nil, "et": nil, "fi": nil, "sv": nil, "nb": nil,
	"da": nil, "el": nil,
}

// Formatter formats amounts for one locale and currency.
type Formatter struct {
	tag      language.Tag
	printer  *message.Printer
	currency *money.Currency
	money    *money.Formatter
}

// New builds a formatter for locale. An empty currencyCode picks the currency
// of the locale's region.
func New(locale, currencyCode string) (*Formatter, error) {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "" {
		region, _ := tag.Region()
		unit, ok := currency.FromRegion(region)
		if !ok {
			return nil, fmt.Errorf("%w: no currency for region %s", ErrUnsupportedCurrency, region)
		}
		code = unit.String()
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, code)
	}

	printer := message.NewPrinter(tag)
	decimal, thousand := localeSeparators(printer, cur.Decimal, cur.Thousand)
	template := cur.Template
	if symbolAfter(tag) {
		template = "1" + nbsp + "$"
	}

	return &Formatter{
		tag:      tag,
		printer:  printer,
		currency: cur,
		money:    money.NewFormatter(cur.Fraction, decimal, thousand, cur.Grapheme, template),
	}, nil
}

// localeSeparators reads the grouping and decimal separators off a sample
// number printed for the locale. It falls back to the given defaults when the
// sample cannot be split.
func localeSeparators(p *message.Printer, decimal, thousand string) (string, string) {
	sample := p.Sprint(number.Decimal(1234567.5, number.Scale(1)))
	var runs []string
	var cur []rune
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if len(cur) > 0 {
				runs = append(runs, string(cur))
				cur = cur[:0]
			}
			continue
		}
		cur = append(cur, r)
	}
	switch len(runs) {
	case 1:
		return runs[0], ""
	case 3:
		if runs[0] == runs[1] {
			return runs[2], runs[0]
		}
	}
	return decimal, thousand
}

func symbolAfter(tag language.Tag) bool {
	base, _ := tag.Base()
	regions, ok := trailingSymbol[base.String()]
	if !ok {
		return false
	}
	if len(regions) == 0 {
		return true
	}
	region, _ := tag.Region()
	for _, r := range regions {
		if region.String() == r {
			return true
		}
	}
	return false
}

// Locale returns the BCP 47 tag of the formatter.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// CurrencyCode returns the ISO 4217 code used for currency strings.
func (f *Formatter) CurrencyCode() string {
	return f.currency.Code
}

// ToCurrencyString formats amount with the currency conventions of the
// formatter. NaN and infinities are rejected with ErrInvalidAmount.
func (f *Formatter) ToCurrencyString(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", fmt.Errorf("format %v: %w", amount, ErrInvalidAmount)
	}
	minor := amount * math.Pow10(f.currency.Fraction)
	if math.Abs(minor) >= math.MaxInt64 {
		return "", fmt.Errorf("format %v: %w", amount, ErrInvalidAmount)
	}
	return f.money.Format(int64(math.Round(minor))), nil
}

// ToFixedDecimalString formats amount with exactly two fraction digits and
// the locale's decimal separator, without grouping.
func (f *Formatter) ToFixedDecimalString(amount float64) string {
	if math.Abs(amount) < 0.005 {
		amount = 0 // no "-0.00"
	}
	return f.printer.Sprint(number.Decimal(amount, number.Scale(2), number.NoSeparator()))
}

var defaultFormatter = mustNew(DefaultLocale, "")

func mustNew(locale, code string) *Formatter {
	f, err := New(locale, code)
	if err != nil {
		panic(err)
	}
	return f
}

// Default returns the formatter for DefaultLocale.
func Default() *Formatter {
	return defaultFormatter
}

// ToCurrencyString formats amount with the default formatter.
func ToCurrencyString(amount float64) (string, error) {
	return defaultFormatter.ToCurrencyString(amount)
}

// ToFixedDecimalString formats amount with the default formatter.
func ToFixedDecimalString(amount float64) string {
	return defaultFormatter.ToFixedDecimalString(amount)
}
