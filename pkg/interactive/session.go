// Package interactive wraps a paginator in a navigation session for the
// CLI paging view. A session that sits idle past its timeout freezes
// permanently; freezing lives here at the UI boundary, not inside the
// paginator.
package interactive

import (
	"errors"
	"sync"
	"time"

	"github.com/webscout/webscout/pkg/duration"
	"github.com/webscout/webscout/pkg/paginate"
)

// ErrSessionExpired is returned by navigation on a frozen session.
var ErrSessionExpired = errors.New("session expired")

// Session guards a Paginator with an idle timeout. Safe for concurrent
// use.
type Session struct {
	mu     sync.Mutex
	pager  *paginate.Paginator
	idle   time.Duration
	last   time.Time
	frozen bool
	now    func() time.Time // stubbed in tests
}

// NewSession creates a Session over the paginator. A non-positive idle
// timeout falls back to the default.
func NewSession(pager *paginate.Paginator, idle time.Duration) *Session {
	if idle <= 0 {
		idle = duration.SessionIdle
	}
	s := &Session{
		pager: pager,
		idle:  idle,
		now:   time.Now,
	}
	s.last = s.now()
	return s
}

// touch freezes the session if the idle window passed, otherwise stamps
// the activity time. Callers hold s.mu.
func (s *Session) touch() error {
	if s.frozen {
		return ErrSessionExpired
	}
	now := s.now()
	if now.Sub(s.last) > s.idle {
		s.frozen = true
		return ErrSessionExpired
	}
	s.last = now
	return nil
}

// Next advances one page. Returns ErrSessionExpired once the session has
// frozen; the page index never moves after that.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.touch(); err != nil {
		return err
	}
	s.pager.Advance()
	return nil
}

// Prev retreats one page, with the same freezing rules as Next.
func (s *Session) Prev() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.touch(); err != nil {
		return err
	}
	s.pager.Retreat()
	return nil
}

// Text renders the current page with its header. Reading does not count
// as activity and works even on a frozen session.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.Header() + "\n" + s.pager.PageText()
}

// Frozen reports whether the session has expired.
func (s *Session) Frozen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.frozen && s.now().Sub(s.last) > s.idle {
		s.frozen = true
	}
	return s.frozen
}
