// Package scraper provides the rate-limited HTTP primitives every other
// module builds on: HEAD and GET through one shared connection pool, with
// a minimum spacing between any two outbound requests and a hard response
// body cap.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/webscout/webscout/pkg/defaults"
	"github.com/webscout/webscout/pkg/duration"
	"github.com/webscout/webscout/pkg/httpclient"
	"github.com/webscout/webscout/pkg/iohelper"
	"github.com/webscout/webscout/pkg/ratelimit"
)

// ErrContentTooLarge is returned by Get when the response body exceeds the
// configured cap. Oversized bodies are rejected, never truncated.
var ErrContentTooLarge = errors.New("Content too large")

// ErrInvalidURL is returned when an operation receives a URL that is not
// an absolute http or https URL with a host.
var ErrInvalidURL = errors.New("invalid URL")

// Config configures a Client.
type Config struct {
	// Timeout is the per-request timeout covering connect and read
	Timeout time.Duration

	// MaxBodySize is the response body cap in bytes for GET
	MaxBodySize int64

	// MinInterval is the minimum spacing between any two outbound requests
	MinInterval time.Duration

	// PoolSize limits simultaneous connections
	PoolSize int

	// UserAgent overrides the default browser user agent
	UserAgent string

	// InsecureSkipVerify skips TLS certificate verification
	InsecureSkipVerify bool
}

// DefaultConfig returns the standard polite-scraping defaults.
func DefaultConfig() *Config {
	return &Config{
		Timeout:     duration.HTTPRequest,
		MaxBodySize: defaults.MaxBodySize,
		MinInterval: duration.RequestInterval,
		PoolSize:    defaults.PoolSize,
		UserAgent:   defaults.UAChrome,
	}
}

// FetchResult is the successful outcome of a HEAD or GET. Failures are
// reported as errors, so a FetchResult never carries an ok flag.
type FetchResult struct {
	// FinalURL is the URL after any redirects
	FinalURL string `json:"url"`

	// Status is the HTTP status code of the final response
	Status int `json:"status"`

	// Headers holds the final response headers, first value per key
	Headers map[string]string `json:"headers,omitempty"`

	// Body is the raw response body; nil for HEAD
	Body []byte `json:"-"`
}

// ContentType returns the Content-Type header of the response, or "".
func (r *FetchResult) ContentType() string {
	return r.Headers["Content-Type"]
}

// Server returns the Server header of the response, or "".
func (r *FetchResult) Server() string {
	return r.Headers["Server"]
}

// Client issues rate-limited HTTP requests through one shared connection
// pool. All methods are safe for concurrent use. The pool is created
// lazily and recreated after Close.
type Client struct {
	cfg    Config
	gate   *ratelimit.Limiter
	logger *slog.Logger

	mu   sync.Mutex
	http *http.Client
}

// New creates a Client. A nil config uses DefaultConfig.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = duration.HTTPRequest
	}
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = defaults.MaxBodySize
	}
	if cfg.MinInterval == 0 {
		cfg.MinInterval = duration.RequestInterval
	}
	if cfg.PoolSize == 0 {
		cfg.PoolSize = defaults.PoolSize
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UAChrome
	}

	return &Client{
		cfg:    *cfg,
		gate:   ratelimit.New(cfg.MinInterval),
		logger: slog.Default(),
	}
}

// ValidateURL checks that raw is an absolute http or https URL with a
// non-empty host.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}

// Origin reduces a URL to its probing base: scheme plus host, no path.
func Origin(raw string) (string, error) {
	if err := ValidateURL(raw); err != nil {
		return "", err
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	return u.Scheme + "://" + u.Host, nil
}

// session returns the pooled HTTP client, creating it if absent or
// previously closed.
func (c *Client) session() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.http == nil {
		c.http = httpclient.New(httpclient.Config{
			Timeout:            c.cfg.Timeout,
			MaxConnsPerHost:    c.cfg.PoolSize,
			InsecureSkipVerify: c.cfg.InsecureSkipVerify,
		})
	}
	return c.http
}

// Close releases pooled connections. Idempotent; a later request
// recreates the pool.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.http != nil {
		c.http.CloseIdleConnections()
		c.http = nil
	}
}

// Head performs a rate-limited HEAD request following redirects.
func (c *Client) Head(ctx context.Context, rawURL string) (*FetchResult, error) {
	resp, err := c.do(ctx, http.MethodHead, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return &FetchResult{
		FinalURL: resp.Request.URL.String(),
		Status:   resp.StatusCode,
		Headers:  flattenHeaders(resp.Header),
	}, nil
}

// Get performs a rate-limited GET request following redirects and reads
// the body. Bodies larger than the configured cap fail with
// ErrContentTooLarge before any parsing happens.
func (c *Client) Get(ctx context.Context, rawURL string) (*FetchResult, error) {
	resp, err := c.do(ctx, http.MethodGet, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Read one byte past the cap so oversize is detected without
	// pulling an unbounded body into memory.
	body, err := iohelper.ReadBody(resp.Body, c.cfg.MaxBodySize+1)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(body)) > c.cfg.MaxBodySize {
		c.logger.Warn("response body over cap",
			slog.String("url", rawURL),
			slog.Int64("cap", c.cfg.MaxBodySize))
		return nil, ErrContentTooLarge
	}

	return &FetchResult{
		FinalURL: resp.Request.URL.String(),
		Status:   resp.StatusCode,
		Headers:  flattenHeaders(resp.Header),
		Body:     body,
	}, nil
}

// do validates the URL, waits out the rate gate, and dispatches.
func (c *Client) do(ctx context.Context, method, rawURL string) (*http.Response, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	if err := c.gate.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate gate: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", defaults.AcceptHTML)
	req.Header.Set("Accept-Language", defaults.AcceptLanguage)
	req.Header.Set("Connection", "keep-alive")

	resp, err := c.session().Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			slog.String("method", method),
			slog.String("url", rawURL),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	c.logger.Debug("request",
		slog.String("method", method),
		slog.String("url", rawURL),
		slog.Int("status", resp.StatusCode))
	return resp, nil
}

// flattenHeaders keeps the first value per header key.
func flattenHeaders(h http.Header) map[string]string {
	m := make(map[string]string, len(h))
	for k := range h {
		m[k] = h.Get(k)
	}
	return m
}
