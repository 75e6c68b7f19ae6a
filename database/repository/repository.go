package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup misses. Callers treat it as a
// normal outcome, not a fault.
var ErrNotFound = errors.New("not found")

// SimulateLatency blocks for d to mimic a network round-trip so demo
// clients can exercise their loading states. A zero d returns immediately;
// a cancelled context cuts the wait short.
func SimulateLatency(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
