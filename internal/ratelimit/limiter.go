package ratelimit

import (
	"context"
	"time"
)

const keyPrefix = "ratelimit:"

// Counter increments a windowed counter.
type Counter interface {
	IncrWithExpire(ctx context.Context, key string, expiration time.Duration) (int64, time.Duration, error)
}

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter is a fixed window request limiter. A client may exceed the
// per-minute limit by the burst before it is rejected.
type Limiter struct {
	counter Counter
	limit   int
	burst   int
	window  time.Duration
	now     func() time.Time
}

func NewLimiter(counter Counter, requestsPerMinute, burst int) *Limiter {
	if burst < 0 {
		burst = 0
	}
	return &Limiter{
		counter: counter,
		limit:   requestsPerMinute,
		burst:   burst,
		window:  time.Minute,
		now:     time.Now,
	}
}

// Allow counts one request for the client key. Counter failures are
// returned with an allowing decision so callers can fail open.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	d := Decision{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit,
		ResetAt:   l.now().Add(l.window),
	}

	count, ttl, err := l.counter.IncrWithExpire(ctx, keyPrefix+key, l.window)
	if err != nil {
		return d, err
	}
	if ttl > 0 && ttl <= l.window {
		d.ResetAt = l.now().Add(ttl)
	}

	d.Remaining = max(l.limit-int(count), 0)
	d.Allowed = int(count) <= l.limit+l.burst
	return d, nil
}
