package throttle

import (
	"testing"
	"time"
)

func TestGate_FirstCallAllowed(t *testing.T) {
	g := NewGate(time.Second)

	if wait, ok := g.Allow("alice"); !ok || wait != 0 {
		t.Errorf("first call: Allow = (%v, %v), want (0, true)", wait, ok)
	}
}

func TestGate_SecondCallWithinCooldownRefused(t *testing.T) {
	g := NewGate(time.Second)

	g.Allow("alice")
	wait, ok := g.Allow("alice")
	if ok {
		t.Fatal("second call within cooldown should be refused")
	}
	if wait <= 0 || wait > time.Second {
		t.Errorf("retryAfter = %v, want within (0, 1s]", wait)
	}
}

func TestGate_CallersIndependent(t *testing.T) {
	g := NewGate(time.Second)

	g.Allow("alice")
	if _, ok := g.Allow("bob"); !ok {
		t.Error("a second caller must not be throttled by the first")
	}
}

func TestGate_AllowedAfterCooldown(t *testing.T) {
	g := NewGate(time.Second)

	clock := time.Now()
	g.now = func() time.Time { return clock }

	g.Allow("alice")
	clock = clock.Add(1100 * time.Millisecond)

	if _, ok := g.Allow("alice"); !ok {
		t.Error("call after cooldown should be allowed")
	}
}

func TestGate_Reset(t *testing.T) {
	g := NewGate(time.Minute)

	g.Allow("alice")
	g.Reset()

	if _, ok := g.Allow("alice"); !ok {
		t.Error("Reset should clear caller state")
	}
}

func TestNewGate_NonPositiveCooldownUsesDefault(t *testing.T) {
	g := NewGate(0)
	if g.cooldown <= 0 {
		t.Errorf("cooldown = %v, want positive default", g.cooldown)
	}
}
