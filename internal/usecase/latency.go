package usecase

import (
	"context"
	"time"
)

// Artificial per-operation delays emulating the network boundary the real
// backend would introduce. Values match the original service contract.
const (
	loginDelay        = 800 * time.Millisecond
	signupDelay       = 800 * time.Millisecond
	doctorDelay       = 300 * time.Millisecond
	appointmentsDelay = 500 * time.Millisecond
	bookDelay         = 800 * time.Millisecond
	cancelDelay       = 500 * time.Millisecond
	recordsDelay      = 600 * time.Millisecond
	profileDelay      = 700 * time.Millisecond
)

type delayFunc func(ctx context.Context, d time.Duration) error

// newDelayFunc builds the simulated-latency sleeper. The delay is bounded and
// honors context cancellation so an abandoned caller never blocks shutdown.
func newDelayFunc(scale float64) delayFunc {
	return func(ctx context.Context, d time.Duration) error {
		if scale <= 0 {
			return ctx.Err()
		}
		timer := time.NewTimer(time.Duration(float64(d) * scale))
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
