package cache

import (
	"context"
	"time"

	applog "contabilidad/internal/log"
)

// Cleaner interface for caches that support cleanup
type Cleaner interface {
	CleanExpired() int
}

// Janitor periodically drops expired entries from registered caches
type Janitor struct {
	caches   []Cleaner
	interval time.Duration
	logger   *applog.Logger
}

// NewJanitor creates a janitor sweeping every interval
func NewJanitor(interval time.Duration, logger *applog.Logger) *Janitor {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		interval: interval,
		logger:   logger.WithComponent(applog.ComponentCache),
	}
}

// Register adds a cache to the sweep
func (j *Janitor) Register(c Cleaner) {
	j.caches = append(j.caches, c)
}

// Sweep cleans every registered cache once and returns the number of entries removed
func (j *Janitor) Sweep() int {
	total := 0
	for _, c := range j.caches {
		total += c.CleanExpired()
	}
	return total
}

// Run sweeps until ctx is cancelled, then returns nil.
func (j *Janitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := j.Sweep(); removed > 0 {
				j.logger.DebugContext(ctx, "Cache cleanup completed", "entries_removed", removed)
			}
		case <-ctx.Done():
			return nil
		}
	}
}
