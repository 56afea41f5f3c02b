package trigger

import (
	"context"
	"sync"
	"time"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/navigate"
)

const DefaultSuppressWindow = time.Second

// Section is a channel's top offset within the scrollable page.
type Section struct {
	Channel domain.Channel
	Top     int
}

// Scroll watches the scroll position and requests the section being read.
//
// The orchestrator scrolls the page itself when it switches; Programmatic
// opens a short window during which observed positions are ignored, so
// that scroll does not come back as a second request.
type Scroll struct {
	nav       Navigator
	lookahead int
	window    time.Duration
	now       func() time.Time

	mu            sync.Mutex
	last          domain.Channel
	prev          domain.Channel
	suppressUntil time.Time
}

type ScrollOption func(*Scroll)

// WithClock is useful for tests.
func WithClock(now func() time.Time) ScrollOption {
	return func(s *Scroll) { s.now = now }
}

func WithSuppressWindow(d time.Duration) ScrollOption {
	return func(s *Scroll) { s.window = d }
}

func NewScroll(nav Navigator, lookahead int, opts ...ScrollOption) *Scroll {
	s := &Scroll{
		nav:       nav,
		lookahead: lookahead,
		window:    DefaultSuppressWindow,
		now:       time.Now,
		last:      domain.DefaultChannel,
		prev:      domain.DefaultChannel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Locate returns the last section whose top, less the lookahead, has been
// reached by pos. Sections must be in page order.
func (s *Scroll) Locate(sections []Section, pos int) (domain.Channel, bool) {
	var cur domain.Channel
	found := false
	for _, sec := range sections {
		if pos >= sec.Top-s.lookahead {
			cur = sec.Channel
			found = true
		}
	}
	return cur, found
}

// Programmatic records a scroll the orchestrator made on its own.
func (s *Scroll) Programmatic(c domain.Channel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = c
	s.prev = c
	s.suppressUntil = s.now().Add(s.window)
}

// Pending decides whether pos warrants a request and, if so, records it as
// handled. It never blocks, so UI loops can call it directly.
func (s *Scroll) Pending(sections []Section, pos int) (domain.Channel, bool) {
	return s.pending(sections, pos, false)
}

// PendingAtEnd is Pending for a page that cannot scroll any further. Every
// section starting at or below pos is on screen then, so the recorded
// channel stays if it is one of them; otherwise the last section is chosen.
func (s *Scroll) PendingAtEnd(sections []Section, pos int) (domain.Channel, bool) {
	return s.pending(sections, pos, true)
}

func (s *Scroll) pending(sections []Section, pos int, atEnd bool) (domain.Channel, bool) {
	if s.nav.Busy() {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		c  domain.Channel
		ok bool
	)
	if atEnd {
		c, ok = s.locateEnd(sections, pos)
	} else {
		c, ok = s.Locate(sections, pos)
	}
	if !ok {
		return "", false
	}
	if s.now().Before(s.suppressUntil) {
		return "", false
	}
	if c == s.last {
		return "", false
	}
	s.prev = s.last
	s.last = c
	return c, true
}

// locateEnd expects s.mu to be held.
func (s *Scroll) locateEnd(sections []Section, pos int) (domain.Channel, bool) {
	if len(sections) == 0 {
		return "", false
	}
	for _, sec := range sections {
		if sec.Channel == s.last && sec.Top >= pos {
			return s.last, true
		}
	}
	return sections[len(sections)-1].Channel, true
}

// Settle reports how the request Pending returned for c ended. A request
// that did not switch is forgotten, so the next observation asks again.
func (s *Scroll) Settle(c domain.Channel, out navigate.Outcome) {
	if out == navigate.Switched || out == navigate.SameChannel {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == c {
		s.last = s.prev
	}
}

// Observe is Pending followed by the request.
func (s *Scroll) Observe(ctx context.Context, sections []Section, pos int) (navigate.Outcome, error) {
	c, ok := s.Pending(sections, pos)
	if !ok {
		return navigate.SameChannel, nil
	}
	out, err := s.nav.RequestChannel(ctx, c)
	s.Settle(c, out)
	return out, err
}

func (s *Scroll) Last() domain.Channel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
