// Package source defines where movements come from.
package source

import (
	"context"
	"errors"

	"contabilidad/internal/core"
)

// ErrNotFound is returned when no movement has the requested ID.
var ErrNotFound = errors.New("movement not found")

// Ports for outbound adapters.
type (
	// MovementLister returns every movement in display order.
	MovementLister interface {
		ListMovements(ctx context.Context) ([]core.Movement, error)
	}

	// MovementFinder returns a single movement by ID.
	MovementFinder interface {
		FindMovement(ctx context.Context, id int64) (core.Movement, error)
	}

	// Source is the full read surface the HTTP layer needs.
	Source interface {
		MovementLister
		MovementFinder
	}
)

// Find scans a listed slice for id. Adapters without an indexed lookup use it.
func Find(movements []core.Movement, id int64) (core.Movement, error) {
	for _, m := range movements {
		if m.ID == id {
			return m, nil
		}
	}
	return core.Movement{}, ErrNotFound
}
