package llm

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	perr "streamlate/internal/platform/errors"
)

// Gate is the counting admission gate in front of the context pool.
// It issues exactly as many permits as the pool has contexts; requests
// beyond that wait rather than fail
type Gate struct {
	sem     *semaphore.Weighted
	timeout time.Duration
}

// NewGate creates a gate with the given permit count. timeout bounds each
// Acquire; zero means wait for the caller's context only
func NewGate(permits int, timeout time.Duration) *Gate {
	return &Gate{sem: semaphore.NewWeighted(int64(permits)), timeout: timeout}
}

// Acquire blocks until a permit is available, the caller's context is
// done, or the configured timeout elapses. Timeout maps to Unavailable so
// the HTTP layer reports 503 rather than hanging callers forever
func (g *Gate) Acquire(ctx context.Context) error {
	wait := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		wait, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	if err := g.sem.Acquire(wait, 1); err != nil {
		// Only the gate's own timer counts as a gate timeout; a caller
		// deadline or cancellation expiring first is the caller's abort
		if ctx.Err() == nil && wait.Err() == context.DeadlineExceeded {
			return perr.Unavailablef("llm: no generation context available within %s", g.timeout)
		}
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "llm: admission wait aborted")
	}
	return nil
}

// Release returns a permit. Every successful Acquire must be paired with
// exactly one Release
func (g *Gate) Release() { g.sem.Release(1) }
