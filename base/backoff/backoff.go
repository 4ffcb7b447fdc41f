package backoff

import (
	"context"
	"time"
)

// Strategy computes the next wait from the number of waits done so far.
type Strategy interface {
	Duration(count int, start time.Duration) time.Duration
}

// Backoff sleeps with a growing duration, capped by limit when limit > 0.
// It is not safe for concurrent use, create one per waiting loop.
type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
	strategy     Strategy
}

func New(strategy Strategy, start time.Duration, limit time.Duration) *Backoff {
	backoff := Backoff{strategy: strategy, start: start, limit: limit}
	backoff.Reset()
	return &backoff
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.getNextDuration()
}

// Count returns how many waits completed since the last Reset.
func (b *Backoff) Count() int {
	return b.count
}

// Wait blocks for NextDuration, returning ctx.Err() if ctx ends first.
func (b *Backoff) Wait(ctx context.Context) error {
	timer := time.NewTimer(b.NextDuration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	b.count++
	b.LastDuration = b.NextDuration
	b.NextDuration = b.getNextDuration()
	return nil
}

func (b *Backoff) getNextDuration() time.Duration {
	backoff := b.strategy.Duration(b.count, b.start)
	if b.limit > 0 && backoff > b.limit {
		backoff = b.limit
	}
	return backoff
}

type exponential struct{}

func (exponential) Duration(count int, start time.Duration) time.Duration {
	// 1<<62 would overflow once multiplied, the limit kicks in long before
	if count > 30 {
		count = 30
	}
	return time.Duration(int64(1)<<uint(count)) * start
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	return New(exponential{}, start, limit)
}

type constant struct{}

func (constant) Duration(_ int, start time.Duration) time.Duration {
	return start
}

func NewConstant(interval time.Duration) *Backoff {
	return New(constant{}, interval, 0)
}
