// Package defaults provides canonical numeric and string constants shared
// across the codebase.
//
// Usage:
//
//	cfg.MaxBodySize = defaults.MaxBodySize
//	cfg.UserAgent = defaults.UAChrome
package defaults

// Version is the tool version reported by the CLI.
const Version = "1.2.0"

// ============================================================================
// HTTP LIMITS
// ============================================================================

const (
	// MaxBodySize is the response body cap; larger bodies are rejected,
	// never truncated (10 MiB)
	MaxBodySize int64 = 10 * 1024 * 1024

	// PoolSize is the connection-pool limit per scraper instance
	PoolSize = 20
)

// ============================================================================
// DISPLAY
// ============================================================================

const (
	// PageSize is how many discovery hits one pager window shows
	PageSize = 10

	// DisplayCap bounds the links and files lists of a listing analysis.
	// It is a display cap, not a discovery limit; pages with more anchors
	// lose the overflow.
	DisplayCap = 20

	// SnippetChars is the default visible-text snippet length
	SnippetChars = 500
)

// ============================================================================
// REQUEST HEADERS
// ============================================================================

const (
	// UAChrome is the browser user agent sent with every request
	UAChrome = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/123.0 Safari/537.36"

	// AcceptHTML is the Accept header favoring HTML responses
	AcceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"

	// AcceptLanguage is the Accept-Language header sent with every request
	AcceptLanguage = "en-US,en;q=0.5"
)
