package source

import (
	"context"
	"fmt"
	"time"

	"contabilidad/internal/cache"
	"contabilidad/internal/core"
)

const listKey = "movements"

// Cached serves movements from a TTL cache in front of a slower lister.
// Concurrent misses trigger a single upstream load.
type Cached struct {
	upstream MovementLister
	items    *cache.LRUCache[[]core.Movement]
	timeout  time.Duration
}

var _ Source = (*Cached)(nil)

// NewCached wraps upstream with a cache holding snapshots for ttl.
func NewCached(upstream MovementLister, ttl time.Duration) *Cached {
	return &Cached{
		upstream: upstream,
		items:    cache.NewLRUCache[[]core.Movement](1, ttl),
		timeout:  7 * time.Second,
	}
}

// Cache exposes the underlying cache so a janitor can sweep it.
func (c *Cached) Cache() *cache.LRUCache[[]core.Movement] {
	return c.items
}

// ListMovements returns a copy of the cached snapshot.
func (c *Cached) ListMovements(ctx context.Context) ([]core.Movement, error) {
	items, err := c.items.GetOrLoad(listKey, func() ([]core.Movement, error) {
		// Detached from the caller so one cancelled request does not fail the shared load.
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		items, err := c.upstream.ListMovements(lctx)
		if err != nil {
			return nil, fmt.Errorf("load movements: %w", err)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	result := make([]core.Movement, len(items))
	copy(result, items)
	return result, nil
}

// FindMovement looks the ID up in the cached snapshot.
func (c *Cached) FindMovement(ctx context.Context, id int64) (core.Movement, error) {
	items, err := c.ListMovements(ctx)
	if err != nil {
		return core.Movement{}, err
	}
	return Find(items, id)
}

// Invalidate drops the snapshot so the next read reloads it.
func (c *Cached) Invalidate() {
	c.items.Delete(listKey)
}
