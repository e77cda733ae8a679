// Package throttle provides the per-caller cooldown applied before any
// command runs. The state lives in an injected Gate instance with an
// explicit lifecycle, so independent gates can coexist and tests stay
// isolated.
package throttle

import (
	"sync"
	"time"

	"github.com/webscout/webscout/pkg/duration"
)

// Gate tracks the last accepted call per caller and refuses calls that
// arrive within the cooldown. Safe for concurrent use.
type Gate struct {
	mu       sync.Mutex
	cooldown time.Duration
	last     map[string]time.Time
	now      func() time.Time // stubbed in tests
}

// NewGate creates a Gate. A non-positive cooldown falls back to the
// default.
func NewGate(cooldown time.Duration) *Gate {
	if cooldown <= 0 {
		cooldown = duration.CallerCooldown
	}
	return &Gate{
		cooldown: cooldown,
		last:     make(map[string]time.Time),
		now:      time.Now,
	}
}

// Allow reports whether the caller may proceed. An accepted call stamps
// the caller's clock; a refused call reports how long to wait and leaves
// the stamp untouched.
func (g *Gate) Allow(caller string) (retryAfter time.Duration, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if last, seen := g.last[caller]; seen {
		if wait := g.cooldown - now.Sub(last); wait > 0 {
			return wait, false
		}
	}
	g.last[caller] = now
	return 0, true
}

// Reset clears all caller state.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last = make(map[string]time.Time)
}
