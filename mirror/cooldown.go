package mirror

import (
	"context"
	"math/rand/v2"
	"time"
)

// Cooldown is a randomized pause between requests to the upstream source.
type Cooldown struct {
	Min time.Duration
	Max time.Duration
}

// Duration returns a random delay in [Min, Max]. When Max is not above Min
// the delay is Min.
func (c Cooldown) Duration() time.Duration {
	if c.Min < 0 {
		c.Min = 0
	}
	if c.Max <= c.Min {
		return c.Min
	}
	return c.Min + rand.N(c.Max-c.Min+1)
}

// Wait blocks for d or until ctx is done.
func (c Cooldown) Wait(ctx context.Context, d time.Duration) error {
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
