// Package paginate slices discovery hits into fixed-size pages for
// display and tracks the current position with bounds-checked navigation.
package paginate

import (
	"fmt"
	"strings"

	"github.com/webscout/webscout/pkg/defaults"
	"github.com/webscout/webscout/pkg/discovery"
)

// Paginator is a window over a fixed list of probe results. Navigation
// never leaves the valid page range; with no items there is one logical
// empty page at index 0. Not safe for concurrent use; callers serialize.
type Paginator struct {
	base     string
	items    []discovery.ProbeResult
	pageSize int
	current  int
}

// New creates a Paginator over items. base is stripped from each item URL
// for display. A non-positive pageSize falls back to the default.
func New(base string, items []discovery.ProbeResult, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = defaults.PageSize
	}
	return &Paginator{
		base:     base,
		items:    items,
		pageSize: pageSize,
	}
}

// Page returns the zero-based current page index.
func (p *Paginator) Page() int {
	return p.current
}

// MaxPages returns the page count: ceil(len/size), at least 1 so an empty
// result set still renders one "(none)" page.
func (p *Paginator) MaxPages() int {
	if len(p.items) == 0 {
		return 1
	}
	return (len(p.items) + p.pageSize - 1) / p.pageSize
}

// Advance moves one page forward; a no-op on the last page.
func (p *Paginator) Advance() {
	if p.current < p.MaxPages()-1 {
		p.current++
	}
}

// Retreat moves one page back; a no-op on the first page.
func (p *Paginator) Retreat() {
	if p.current > 0 {
		p.current--
	}
}

// Window returns the items of the current page.
func (p *Paginator) Window() []discovery.ProbeResult {
	start := p.current * p.pageSize
	if start >= len(p.items) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// PageText renders the current window as display lines, one hit per line
// with its path relative to the base, or "(none)" for an empty window.
func (p *Paginator) PageText() string {
	window := p.Window()
	if len(window) == 0 {
		return "(none)"
	}
	lines := make([]string, 0, len(window))
	for _, item := range window {
		lines = append(lines, fmt.Sprintf("%s -> %d", strings.TrimPrefix(item.URL, p.base), item.Status))
	}
	return strings.Join(lines, "\n")
}

// Header renders the "Page x/y" line for the current position.
func (p *Paginator) Header() string {
	return fmt.Sprintf("Page %d/%d", p.current+1, p.MaxPages())
}
