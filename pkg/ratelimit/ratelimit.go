// Package ratelimit provides the inter-request gate shared by every
// outbound request of a scraper instance. The gate enforces a minimum
// spacing between dispatches regardless of destination host, keeping the
// total outbound rate polite rather than throttling per host.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/webscout/webscout/pkg/duration"
)

// Limiter spaces outbound requests by a minimum interval.
// The zero value is not usable; construct with New.
type Limiter struct {
	limiter  *rate.Limiter
	interval time.Duration
}

// New creates a Limiter enforcing the given minimum spacing between any
// two dispatches. A non-positive interval falls back to the default.
func New(interval time.Duration) *Limiter {
	if interval <= 0 {
		interval = duration.RequestInterval
	}
	// Burst of 1: the first dispatch is immediate, every later one waits
	// out the remainder of the interval.
	return &Limiter{
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		interval: interval,
	}
}

// Wait suspends the caller until the interval since the last dispatch has
// elapsed, then stamps the new dispatch time. Safe for concurrent use.
// Returns the context error if ctx is canceled while waiting.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Interval reports the configured minimum spacing.
func (l *Limiter) Interval() time.Duration {
	return l.interval
}
