package clock

import (
	"context"
	"time"
)

// TickFunc receives the current instant on every tick.
type TickFunc func(now time.Time)

// Ticker delivers periodic ticks from a clock to a callback. The conductor
// never polls; this is the external clock signal driving real-time
// recomputation.
type Ticker struct {
	clock    Clock
	interval time.Duration
}

// NewTicker creates a ticker reading from the given clock.
func NewTicker(c Clock, interval time.Duration) *Ticker {
	return &Ticker{
		clock:    c,
		interval: interval,
	}
}

// Run delivers ticks to fn until the context is cancelled. The first tick
// fires after one interval, not immediately.
func (t *Ticker) Run(ctx context.Context, fn TickFunc) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(t.clock.Now())
		}
	}
}
