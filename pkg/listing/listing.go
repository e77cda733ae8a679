// Package listing analyzes a single page as a directory listing: every
// anchor is resolved to an absolute URL and classified as a file or a
// sub-link by its path extension.
package listing

import (
	"context"
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/webscout/webscout/pkg/defaults"
	"github.com/webscout/webscout/pkg/page"
	"github.com/webscout/webscout/pkg/scraper"
)

// extensionRE matches a path whose last segment ends in a dot followed by
// one to four alphanumerics ("b.pdf", "b.tar.gz" via "gz"). Anything else,
// including trailing slashes and bare segments, counts as a sub-link.
var extensionRE = regexp.MustCompile(`(?i)\.[a-z0-9]{1,4}$`)

// Report is the outcome of analyzing one page.
//
// Links and Files are capped at 20 entries each in document order. That is
// a display cap, not a discovery limit: pages with more anchors of either
// kind lose the overflow.
type Report struct {
	// URL is the analyzed URL after any redirects
	URL string `json:"url"`

	// Status is the HTTP status code of the fetch
	Status int `json:"status"`

	// IsListing reports the directory-index heuristic for the page
	IsListing bool `json:"is_listing"`

	// Server is the Server response header, if any
	Server string `json:"server,omitempty"`

	// Links holds resolved anchor targets without a file extension
	Links []string `json:"links"`

	// Files holds resolved anchor targets with a file extension
	Files []string `json:"files"`
}

// Analyze fetches the URL and classifies its anchors. Fetch failures pass
// through unchanged.
func Analyze(ctx context.Context, c *scraper.Client, rawURL string) (*Report, error) {
	res, err := page.Fetch(ctx, c, rawURL)
	if err != nil {
		return nil, err
	}

	report := &Report{
		URL:       res.FinalURL,
		Status:    res.Status,
		IsListing: res.IsListing,
		Server:    res.Server(),
		Links:     []string{},
		Files:     []string{},
	}

	// Anchors resolve against the final URL, not the input URL, so
	// relative hrefs on a redirected page land in the right place.
	res.Document.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		full, ok := page.ResolveURL(res.FinalURL, href)
		if !ok {
			return
		}
		if IsFile(full) {
			if len(report.Files) < defaults.DisplayCap {
				report.Files = append(report.Files, full)
			}
		} else {
			if len(report.Links) < defaults.DisplayCap {
				report.Links = append(report.Links, full)
			}
		}
	})

	return report, nil
}

// IsFile classifies an absolute URL by the extension heuristic on its
// path component.
func IsFile(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return extensionRE.MatchString(u.Path)
}
