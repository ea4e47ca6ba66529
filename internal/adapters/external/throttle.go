package external

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMinInterval is the upstream-mandated gap between reverse geocoding calls
const DefaultMinInterval = time.Second

// Throttle spaces calls at least a minimum interval apart. A call arriving
// early is delayed, never rejected. Safe for concurrent use.
type Throttle struct {
	limiter *rate.Limiter
	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
}

// ThrottleParams holds parameters for creating a throttle. Clock and Sleep
// default to the wall clock.
type ThrottleParams struct {
	MinInterval time.Duration
	Clock       func() time.Time
	Sleep       func(ctx context.Context, d time.Duration) error
}

func NewThrottle(params ThrottleParams) *Throttle {
	interval := params.MinInterval
	if interval <= 0 {
		interval = DefaultMinInterval
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	sleep := params.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	return &Throttle{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		now:     clock,
		sleep:   sleep,
	}
}

// Wait blocks until the caller may proceed. It only fails when ctx ends
// first, in which case the reserved slot is handed back.
func (t *Throttle) Wait(ctx context.Context) error {
	now := t.now()
	r := t.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	if delay <= 0 {
		return nil
	}
	if err := t.sleep(ctx, delay); err != nil {
		r.CancelAt(t.now())
		return err
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
