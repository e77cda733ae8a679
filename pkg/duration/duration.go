// Package duration provides canonical time constants for the entire codebase.
// This is the single source of truth for all time-based configuration.
//
// Usage:
//
//	ctx, cancel := context.WithTimeout(ctx, duration.ContextMedium)
//	cfg.Timeout = duration.HTTPRequest
//
// Do not hardcode time.Duration values like `10 * time.Second` elsewhere.
// Reference the appropriate constant from this package instead.
package duration

import "time"

// ============================================================================
// HTTP TIMEOUTS
// ============================================================================

const (
	// HTTPRequest is the total per-request timeout covering connect and read (10s)
	HTTPRequest = 10 * time.Second

	// DialTimeout is for establishing TCP connections (5s)
	DialTimeout = 5 * time.Second

	// TLSHandshake is for completing the TLS handshake (5s)
	TLSHandshake = 5 * time.Second

	// IdleConn is how long idle pooled connections are kept (30s)
	IdleConn = 30 * time.Second

	// KeepAlive is the TCP keep-alive interval for dialed connections (30s)
	KeepAlive = 30 * time.Second
)

// ============================================================================
// REQUEST PACING
// ============================================================================

const (
	// RequestInterval is the minimum spacing between any two outbound
	// requests issued through one scraper instance (1s)
	RequestInterval = 1 * time.Second

	// CallerCooldown is the per-caller cooldown between commands (5s)
	CallerCooldown = 5 * time.Second
)

// ============================================================================
// OPERATION BUDGETS
// ============================================================================

const (
	// ContextShort bounds single-page operations (30s)
	ContextShort = 30 * time.Second

	// ContextMedium bounds a full wordlist discovery run (5min).
	// A discovery run is rate-gated, so its floor is roughly
	// wordlist size x RequestInterval.
	ContextMedium = 5 * time.Minute

	// SessionIdle is how long a paging session stays navigable without
	// input before it freezes (5min)
	SessionIdle = 5 * time.Minute

	// DisplayRound is the precision durations are rounded to for display
	DisplayRound = 100 * time.Millisecond
)
