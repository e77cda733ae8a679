// Package httpclient provides a shared, pooled HTTP client factory.
// One client serves all requests of a scraper instance, so connections
// are reused across page fetches and wordlist probes.
package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/webscout/webscout/pkg/defaults"
	"github.com/webscout/webscout/pkg/duration"
)

// Config holds HTTP client configuration options.
type Config struct {
	// Timeout is the total request timeout covering connect and read (default: 10s)
	Timeout time.Duration

	// MaxConnsPerHost limits simultaneous connections per host (default: 20)
	MaxConnsPerHost int

	// IdleConnTimeout is how long idle connections stay pooled (default: 30s)
	IdleConnTimeout time.Duration

	// DialTimeout is the timeout for establishing connections (default: 5s)
	DialTimeout time.Duration

	// TLSHandshakeTimeout is the timeout for the TLS handshake (default: 5s)
	TLSHandshakeTimeout time.Duration

	// InsecureSkipVerify skips TLS certificate verification (default: false)
	InsecureSkipVerify bool
}

// DefaultConfig returns defaults tuned for polite reconnaissance:
// small pool, short timeouts, redirects followed.
func DefaultConfig() Config {
	return Config{
		Timeout:             duration.HTTPRequest,
		MaxConnsPerHost:     defaults.PoolSize,
		IdleConnTimeout:     duration.IdleConn,
		DialTimeout:         duration.DialTimeout,
		TLSHandshakeTimeout: duration.TLSHandshake,
	}
}

// New creates an HTTP client with the given configuration.
// The client follows redirects; callers read the final URL from
// resp.Request.URL after the call.
func New(cfg Config) *http.Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = duration.HTTPRequest
	}
	if cfg.MaxConnsPerHost == 0 {
		cfg.MaxConnsPerHost = defaults.PoolSize
	}
	if cfg.IdleConnTimeout == 0 {
		cfg.IdleConnTimeout = duration.IdleConn
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = duration.DialTimeout
	}
	if cfg.TLSHandshakeTimeout == 0 {
		cfg.TLSHandshakeTimeout = duration.TLSHandshake
	}

	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: duration.KeepAlive,
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          cfg.MaxConnsPerHost,
		MaxIdleConnsPerHost:   cfg.MaxConnsPerHost,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		ForceAttemptHTTP2:     true,
		ExpectContinueTimeout: 1 * time.Second,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		DialContext:           dialer.DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		},
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}
}

// WithTimeout returns a Config based on DefaultConfig with the given timeout.
func WithTimeout(timeout time.Duration) Config {
	cfg := DefaultConfig()
	cfg.Timeout = timeout
	return cfg
}
