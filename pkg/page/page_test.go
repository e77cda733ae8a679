package page

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/webscout/webscout/pkg/scraper"
)

func testClient() *scraper.Client {
	cfg := scraper.DefaultConfig()
	cfg.MinInterval = time.Millisecond
	return scraper.New(cfg)
}

func serve(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_ListingHeuristic(t *testing.T) {
	cases := []struct {
		name string
		body string
		want bool
	}{
		{"apache index", `<html><title>Index of /uploads</title><body><a href="..">Parent Directory</a></body></html>`, true},
		{"case insensitive", `<html><body>INDEX OF /backup</body></html>`, true},
		{"nginx banner", `<html><body><hr><center>nginx</center></body></html>`, true},
		{"article page", `<html><title>My Blog</title><body><p>Hello world, this is a post about cats.</p></body></html>`, false},
	}

	c := testClient()
	defer c.Close()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := serve(t, tc.body)
			res, err := Fetch(context.Background(), c, srv.URL)
			if err != nil {
				t.Fatalf("Fetch failed: %v", err)
			}
			if res.IsListing != tc.want {
				t.Errorf("IsListing = %v, want %v", res.IsListing, tc.want)
			}
		})
	}
}

func TestResult_Title(t *testing.T) {
	c := testClient()
	defer c.Close()

	srv := serve(t, "<html><title>\n  Hello   World \n</title><body></body></html>")
	res, err := Fetch(context.Background(), c, srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if got := res.Title(); got != "Hello World" {
		t.Errorf("Title = %q, want %q", got, "Hello World")
	}
}

func TestResult_TitleFallback(t *testing.T) {
	c := testClient()
	defer c.Close()

	srv := serve(t, "<html><body>no title here</body></html>")
	res, err := Fetch(context.Background(), c, srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if got := res.Title(); got != "No title found" {
		t.Errorf("Title = %q, want fallback", got)
	}
}

func TestResult_Links(t *testing.T) {
	c := testClient()
	defer c.Close()

	body := `<html><body>
		<a href="/a">a</a>
		<a href="/a">duplicate</a>
		<a href="https://other.example/x">external</a>
		<a href="#section">fragment only</a>
		<a href="">empty</a>
		<a href="mailto:x@example.com">mail</a>
	</body></html>`
	srv := serve(t, body)

	res, err := Fetch(context.Background(), c, srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	links := res.Links()
	want := []string{"https://other.example/x", srv.URL + "/a"}
	if len(links) != len(want) {
		t.Fatalf("got %d links %v, want %d", len(links), links, len(want))
	}
	for _, w := range want {
		found := false
		for _, l := range links {
			if l == w {
				found = true
			}
		}
		if !found {
			t.Errorf("missing link %q in %v", w, links)
		}
	}
}

func TestResult_Images(t *testing.T) {
	c := testClient()
	defer c.Close()

	srv := serve(t, `<html><body><img src="/logo.png"><img src="/logo.png"><img src=""></body></html>`)
	res, err := Fetch(context.Background(), c, srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	imgs := res.Images()
	if len(imgs) != 1 || imgs[0] != srv.URL+"/logo.png" {
		t.Errorf("Images = %v, want single %s/logo.png", imgs, srv.URL)
	}
}

func TestResult_MetaDescription(t *testing.T) {
	c := testClient()
	defer c.Close()

	t.Run("name attribute", func(t *testing.T) {
		srv := serve(t, `<html><head><meta name="description" content="  a  page "></head></html>`)
		res, err := Fetch(context.Background(), c, srv.URL)
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if got := res.MetaDescription(); got != "a page" {
			t.Errorf("MetaDescription = %q", got)
		}
	})

	t.Run("og fallback", func(t *testing.T) {
		srv := serve(t, `<html><head><meta property="og:description" content="og text"></head></html>`)
		res, err := Fetch(context.Background(), c, srv.URL)
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if got := res.MetaDescription(); got != "og text" {
			t.Errorf("MetaDescription = %q", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		srv := serve(t, `<html><head></head></html>`)
		res, err := Fetch(context.Background(), c, srv.URL)
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if got := res.MetaDescription(); got != "No meta description found" {
			t.Errorf("MetaDescription = %q, want fallback", got)
		}
	})
}

func TestResult_TextSnippet(t *testing.T) {
	c := testClient()
	defer c.Close()

	body := `<html><head><style>.x{color:red}</style></head><body>
		<nav>menu items</nav>
		<p>Visible   content here.</p>
		<script>var hidden = 1;</script>
		<footer>copyright</footer>
	</body></html>`
	srv := serve(t, body)

	res, err := Fetch(context.Background(), c, srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	text := res.TextSnippet(500)
	if text != "Visible content here." {
		t.Errorf("TextSnippet = %q", text)
	}

	// The document itself is untouched by snippet extraction.
	if res.Document.Find("script").Length() != 1 {
		t.Error("TextSnippet mutated the owned document")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short, 10) = %q", got)
	}
	got := Truncate("abcdefghij", 5)
	if got != "abcd…" {
		t.Errorf("Truncate = %q, want abcd…", got)
	}
}

func TestResolveURL(t *testing.T) {
	cases := []struct {
		base, ref string
		want      string
		ok        bool
	}{
		{"http://h.example/dir/", "file.txt", "http://h.example/dir/file.txt", true},
		{"http://h.example/dir/", "/abs", "http://h.example/abs", true},
		{"http://h.example/", "https://other.example/x", "https://other.example/x", true},
		{"http://h.example/", "ftp://other.example/x", "", false},
		{"http://h.example/", "javascript:alert(1)", "", false},
	}
	for _, tc := range cases {
		got, ok := ResolveURL(tc.base, tc.ref)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ResolveURL(%q, %q) = (%q, %v), want (%q, %v)",
				tc.base, tc.ref, got, ok, tc.want, tc.ok)
		}
	}
}
