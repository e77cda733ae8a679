// Package discovery probes an origin for common directories and files.
// Every candidate from the compiled-in wordlist gets one concurrent HEAD
// probe through the shared scraper; the rate gate is the only throttle, so
// a run takes roughly wordlist size times the request interval.
package discovery

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/webscout/webscout/pkg/scraper"
)

// foundStatuses is the status whitelist for reported hits. 401 and 5xx
// responses are dropped on purpose; see DESIGN.md.
var foundStatuses = map[int]bool{
	200: true,
	301: true,
	302: true,
	403: true,
}

// ProbeResult is one confirmed hit: headers only, no body was read.
type ProbeResult struct {
	// URL is the probed URL after any redirects
	URL string `json:"url"`

	// Status is the HTTP status code
	Status int `json:"status"`

	// ContentType is the Content-Type header, if any
	ContentType string `json:"content_type,omitempty"`
}

// Report is the outcome of one discovery run.
type Report struct {
	// ScanID identifies the run
	ScanID string `json:"scan_id"`

	// Base is the normalized origin the wordlist was probed against
	Base string `json:"base"`

	// Checked is the wordlist size, always, regardless of hits
	Checked int `json:"checked"`

	// Found holds the whitelist-status hits in wordlist order
	Found []ProbeResult `json:"found"`

	// Duration is the wall-clock time of the run
	Duration time.Duration `json:"duration"`
}

// Scanner runs wordlist discovery through a shared scraper client.
type Scanner struct {
	client *scraper.Client
	logger *slog.Logger
}

// NewScanner creates a Scanner. A nil client gets a default scraper.
func NewScanner(client *scraper.Client) *Scanner {
	if client == nil {
		client = scraper.New(nil)
	}
	return &Scanner{
		client: client,
		logger: slog.Default(),
	}
}

// Discover probes every wordlist candidate against the base origin and
// reports the hits. Only a malformed base fails the whole report; probes
// that fail at the transport level are logged and excluded. Results keep
// wordlist order no matter when each probe completes.
func (s *Scanner) Discover(ctx context.Context, base string) (*Report, error) {
	if err := scraper.ValidateURL(base); err != nil {
		return nil, err
	}
	base = strings.TrimRight(base, "/")

	start := time.Now()
	words := ProbeList()

	// One slot per candidate so completion order cannot reorder results.
	results := make([]*ProbeResult, len(words))

	var wg sync.WaitGroup
	for i, w := range words {
		wg.Add(1)
		go func(i int, word string) {
			defer wg.Done()
			target := base + "/" + word
			res, err := s.client.Head(ctx, target)
			if err != nil {
				s.logger.Debug("probe failed",
					slog.String("url", target),
					slog.String("error", err.Error()))
				return
			}
			results[i] = &ProbeResult{
				URL:         res.FinalURL,
				Status:      res.Status,
				ContentType: res.ContentType(),
			}
		}(i, w)
	}
	wg.Wait()

	found := make([]ProbeResult, 0, len(words))
	for _, r := range results {
		if r != nil && foundStatuses[r.Status] {
			found = append(found, *r)
		}
	}

	return &Report{
		ScanID:   uuid.NewString(),
		Base:     base,
		Checked:  len(words),
		Found:    found,
		Duration: time.Since(start),
	}, nil
}
