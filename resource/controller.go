// Package resource bounds how much conversion work runs at once.
//
// A Controller hands out worker slots (golang.org/x/sync/semaphore) and,
// optionally, paces work with a token bucket (golang.org/x/time/rate). A nil
// *Controller imposes no limits.
package resource

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of conversions running concurrently.
	// If 0, defaults to runtime.GOMAXPROCS(0).
	MaxWorkers int64

	// RatePerSec is the sustained number of conversions per second.
	// If 0, unlimited.
	RatePerSec float64

	// Burst is the token bucket size for RatePerSec.
	// If 0, defaults to 1.
	Burst int
}

// Controller manages concurrency and pacing for batch conversion.
type Controller struct {
	cfg Config

	workers  *semaphore.Weighted
	inFlight atomic.Int64

	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = int64(runtime.GOMAXPROCS(0))
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	c := &Controller{
		cfg:     cfg,
		workers: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.RatePerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Burst)
	}

	return c
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// AcquireWorker reserves a worker slot, blocking until one is free or ctx is
// canceled.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return ctx.Err()
	}
	if err := c.workers.Acquire(ctx, 1); err != nil {
		return err
	}
	c.inFlight.Add(1)
	return nil
}

// TryAcquireWorker reserves a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	if !c.workers.TryAcquire(1) {
		return false
	}
	c.inFlight.Add(1)
	return true
}

// ReleaseWorker returns a slot obtained from AcquireWorker or TryAcquireWorker.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.inFlight.Add(-1)
	c.workers.Release(1)
}

// InFlight returns the number of slots currently held.
func (c *Controller) InFlight() int64 {
	if c == nil {
		return 0
	}
	return c.inFlight.Load()
}

// Wait blocks until the rate limit admits one more conversion.
func (c *Controller) Wait(ctx context.Context) error {
	if c == nil || c.limiter == nil {
		return ctx.Err()
	}
	return c.limiter.Wait(ctx)
}
