package sequencer

import (
	"context"
	"time"
)

// Waiter is the sequencer's only notion of time. A blocking sleep, a timer
// driven by an event loop and an offline renderer that advances by rendering
// samples all fit behind it, so the note timing math stays in one place.
type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}

// WaiterFunc adapts a function to Waiter.
type WaiterFunc func(ctx context.Context, d time.Duration) error

func (f WaiterFunc) Wait(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// SleepWaiter blocks the calling goroutine on a timer.
type SleepWaiter struct{}

func (SleepWaiter) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
