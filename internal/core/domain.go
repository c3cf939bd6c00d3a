package core

import (
	"errors"
	"math"
	"strings"
)

type (
	Money struct {
		Cents int64
	}

	// Movement is a single recorded financial event. Amount is always a
	// magnitude; the direction comes from Classify(Category).
	Movement struct {
		ID       int64
		Title    string
		Amount   Money
		Date     string // display only, never parsed
		Category MovementCategory
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidID       = errors.New("invalid movement id")
	ErrEmptyTitle      = errors.New("empty title")
)

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// MoneyFromFloat converts a decimal magnitude to cents, rounding half away from zero.
func MoneyFromFloat(v float64) (Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Money{}, ErrInvalidAmount
	}
	const maxSafe = float64((1<<63 - 1) / 100)
	if v > maxSafe {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: int64(math.Round(v * 100))}, nil
}

func (mv Movement) Validate() error {
	if mv.ID < 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(mv.Title) == "" {
		return ErrEmptyTitle
	}
	if len(mv.Title) > 200 {
		return errors.New("title too long (max 200 characters)")
	}
	if err := mv.Amount.Validate(); err != nil {
		return err
	}
	if !mv.Category.IsValid() {
		return ErrUnknownCategory
	}
	return nil
}
