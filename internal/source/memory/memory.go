package memory

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"contabilidad/internal/core"
	"contabilidad/internal/source"
)

// SeedFile is read from the data directory when present.
const SeedFile = "seed_movements.txt"

// Store is a read-only in-process movement list.
type Store struct {
	mu    sync.RWMutex
	items []core.Movement
	index map[int64]int
}

var _ source.Source = (*Store)(nil)

// New validates movements and builds a store preserving their order.
func New(movements []core.Movement) (*Store, error) {
	s := &Store{
		items: make([]core.Movement, 0, len(movements)),
		index: make(map[int64]int, len(movements)),
	}
	for _, m := range movements {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("movement %d: %w", m.ID, err)
		}
		if _, dup := s.index[m.ID]; dup {
			return nil, fmt.Errorf("movement %d: duplicate id", m.ID)
		}
		s.index[m.ID] = len(s.items)
		s.items = append(s.items, m)
	}
	return s, nil
}

// Sample returns the movements shown on the home screen when nothing is seeded.
func Sample() []core.Movement {
	return []core.Movement{
		{ID: 1, Title: "Sueldo", Amount: core.Money{Cents: 200000}, Date: "01 Feb", Category: core.Income},
		{ID: 2, Title: "Supermercado", Amount: core.Money{Cents: 15000}, Date: "02 Feb", Category: core.Expense},
		{ID: 3, Title: "Préstamo a Juan", Amount: core.Money{Cents: 5000}, Date: "03 Feb", Category: core.Loan},
		{ID: 4, Title: "Pago de Deuda", Amount: core.Money{Cents: 10000}, Date: "04 Feb", Category: core.Debt},
		{ID: 5, Title: "Internet (Futuro)", Amount: core.Money{Cents: 4000}, Date: "15 Feb", Category: core.FuturePayment},
	}
}

// NewFromFiles seeds the store from base/seed_movements.txt, falling back to
// Sample when the file does not exist.
func NewFromFiles(base string) (*Store, error) {
	f, err := os.Open(filepath.Join(base, SeedFile))
	if errors.Is(err, os.ErrNotExist) {
		return New(Sample())
	}
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	var items []core.Movement
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", SeedFile, lineNo, err)
		}
		items = append(items, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return New(items)
}

// ParseLine parses "id|title|amount|date|CATEGORY".
func ParseLine(line string) (core.Movement, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 5 {
		return core.Movement{}, fmt.Errorf("expected 5 fields, got %d", len(parts))
	}
	id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return core.Movement{}, fmt.Errorf("id %q: %w", parts[0], core.ErrInvalidID)
	}
	cents, err := core.ParseDecimalToCents(parts[2])
	if err != nil {
		return core.Movement{}, fmt.Errorf("amount %q: %w", parts[2], err)
	}
	cat, err := core.ParseCategory(parts[4])
	if err != nil {
		return core.Movement{}, err
	}
	return core.Movement{
		ID:       id,
		Title:    strings.TrimSpace(parts[1]),
		Amount:   core.Money{Cents: cents},
		Date:     strings.TrimSpace(parts[3]),
		Category: cat,
	}, nil
}

// ListMovements returns a copy of the seeded movements.
func (s *Store) ListMovements(_ context.Context) ([]core.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Movement(nil), s.items...), nil
}

// FindMovement returns the movement with id.
func (s *Store) FindMovement(_ context.Context, id int64) (core.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return core.Movement{}, source.ErrNotFound
	}
	return s.items[i], nil
}
