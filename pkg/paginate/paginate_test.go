package paginate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/webscout/webscout/pkg/discovery"
)

func makeItems(n int) []discovery.ProbeResult {
	items := make([]discovery.ProbeResult, n)
	for i := range items {
		items[i] = discovery.ProbeResult{
			URL:    fmt.Sprintf("http://h.example/p%02d", i),
			Status: 200,
		}
	}
	return items
}

func TestPaginator_PageCount(t *testing.T) {
	p := New("http://h.example", makeItems(23), 10)
	if got := p.MaxPages(); got != 3 {
		t.Errorf("MaxPages = %d, want 3", got)
	}
}

func TestPaginator_BoundsCheckedNavigation(t *testing.T) {
	p := New("http://h.example", makeItems(23), 10)

	p.Retreat() // no-op at first page
	if p.Page() != 0 {
		t.Errorf("Retreat at page 0 moved to %d", p.Page())
	}

	p.Advance()
	p.Advance()
	if p.Page() != 2 {
		t.Fatalf("expected page 2, got %d", p.Page())
	}

	p.Advance() // no-op at last page
	if p.Page() != 2 {
		t.Errorf("Advance at last page moved to %d", p.Page())
	}

	p.Retreat()
	if p.Page() != 1 {
		t.Errorf("Retreat moved to %d, want 1", p.Page())
	}
}

func TestPaginator_MiddleWindowContent(t *testing.T) {
	p := New("http://h.example", makeItems(23), 10)
	p.Advance()

	window := p.Window()
	if len(window) != 10 {
		t.Fatalf("window size = %d, want 10", len(window))
	}
	if window[0].URL != "http://h.example/p10" || window[9].URL != "http://h.example/p19" {
		t.Errorf("page 1 window = items[10:20], got %s..%s", window[0].URL, window[9].URL)
	}
}

func TestPaginator_LastWindowPartial(t *testing.T) {
	p := New("http://h.example", makeItems(23), 10)
	p.Advance()
	p.Advance()

	if got := len(p.Window()); got != 3 {
		t.Errorf("last window size = %d, want 3", got)
	}
}

func TestPaginator_PageTextRelativePaths(t *testing.T) {
	p := New("http://h.example", makeItems(2), 10)

	text := p.PageText()
	lines := strings.Split(text, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", text)
	}
	if lines[0] != "/p00 -> 200" {
		t.Errorf("line 0 = %q, want relative path with status", lines[0])
	}
}

func TestPaginator_Empty(t *testing.T) {
	p := New("http://h.example", nil, 10)

	if p.MaxPages() != 1 {
		t.Errorf("MaxPages = %d, want 1 for empty set", p.MaxPages())
	}
	if p.Page() != 0 {
		t.Errorf("Page = %d, want 0", p.Page())
	}
	if got := p.PageText(); got != "(none)" {
		t.Errorf("PageText = %q, want (none)", got)
	}

	p.Advance()
	if p.Page() != 0 {
		t.Errorf("Advance on empty set moved to %d", p.Page())
	}
	if p.Header() != "Page 1/1" {
		t.Errorf("Header = %q", p.Header())
	}
}
