// Package page fetches single pages and extracts structural information
// from them: title, links, images, meta description, visible text, and a
// directory-listing guess.
package page

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/webscout/webscout/pkg/scraper"
)

// listingIndicators are the substrings that mark a body as a raw directory
// index. A substring heuristic, not a guarantee: authored pages mentioning
// "apache" trip it, and exotic index pages slip past it.
var listingIndicators = []string{
	"index of", "directory listing", "parent directory",
	"name", "size", "modified",
	"<title>index of", "apache", "nginx",
}

// Result is a fetched page with its parsed document. The document is
// parsed from the fetch body and must not be retained past the Result.
type Result struct {
	*scraper.FetchResult

	// Document is the parsed HTML, owned by this Result
	Document *goquery.Document

	// IsListing reports whether the body looks like a directory index
	IsListing bool
}

// Fetch GETs the URL through the client and parses the body. Invalid byte
// sequences in the body are tolerated by the HTML parser, never fatal.
func Fetch(ctx context.Context, c *scraper.Client, rawURL string) (*Result, error) {
	res, err := c.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	return &Result{
		FetchResult: res,
		Document:    doc,
		IsListing:   isDirListing(res.Body),
	}, nil
}

// isDirListing applies the case-insensitive indicator heuristic.
func isDirListing(body []byte) bool {
	low := strings.ToLower(string(body))
	for _, k := range listingIndicators {
		if strings.Contains(low, k) {
			return true
		}
	}
	return false
}

// Title returns the whitespace-collapsed first <title>, or a fallback.
func (r *Result) Title() string {
	title := CleanText(r.Document.Find("title").First().Text())
	if title == "" {
		return "No title found"
	}
	return title
}

// Links returns the deduplicated absolute http/https anchor targets,
// resolved against the final URL and sorted. Fragment-only and empty
// hrefs are skipped.
func (r *Result) Links() []string {
	base := r.FinalURL
	seen := make(map[string]struct{})
	r.Document.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		full, ok := ResolveURL(base, href)
		if !ok {
			return
		}
		seen[full] = struct{}{}
	})
	return sortedKeys(seen)
}

// Images returns the deduplicated absolute <img src> targets, resolved
// against the final URL and sorted.
func (r *Result) Images() []string {
	base := r.FinalURL
	seen := make(map[string]struct{})
	r.Document.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		if src == "" {
			return
		}
		full, ok := ResolveURL(base, src)
		if !ok {
			return
		}
		seen[full] = struct{}{}
	})
	return sortedKeys(seen)
}

// MetaDescription returns <meta name=description>, falling back to the
// Open Graph description, or a fallback string.
func (r *Result) MetaDescription() string {
	desc, ok := r.Document.Find(`meta[name="description"]`).Attr("content")
	if !ok {
		desc, _ = r.Document.Find(`meta[property="og:description"]`).Attr("content")
	}
	desc = CleanText(desc)
	if desc == "" {
		return "No meta description found"
	}
	return desc
}

// TextSnippet returns up to maxChars of the page's visible text with
// script, style, nav, header, and footer content removed. The document is
// cloned first, so the Result stays intact.
func (r *Result) TextSnippet(maxChars int) string {
	sel := r.Document.Selection.Clone()
	sel.Find("script,style,nav,header,footer").Remove()
	return Truncate(CleanText(sel.Text()), maxChars)
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// CleanText trims the string and collapses runs of whitespace to single
// spaces.
func CleanText(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Truncate shortens s to at most n runes, ending with an ellipsis when
// anything was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}

// ResolveURL joins ref against base and accepts only well-formed absolute
// http/https results.
func ResolveURL(base, ref string) (string, bool) {
	b, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", false
	}
	resolved := b.ResolveReference(r)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	if resolved.Host == "" {
		return "", false
	}
	return resolved.String(), true
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
