package navigate

import (
	"context"
	"sync"
	"time"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
)

type noSleep struct{}

func (noSleep) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

type recordingSurface struct {
	mu     sync.Mutex
	calls  []string
	active domain.Channel
	code   string
}

func (s *recordingSurface) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *recordingSurface) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *recordingSurface) Container(id string) (ports.Container, error) {
	return nil, domain.MissingTarget("recording.container", id)
}

func (s *recordingSurface) StartTransition(time.Duration) { s.record("transition") }

func (s *recordingSurface) SetActive(c domain.Channel) {
	s.record("active:" + string(c))
	s.mu.Lock()
	s.active = c
	s.mu.Unlock()
}

func (s *recordingSurface) ScrollIntoView(c domain.Channel) { s.record("scroll:" + string(c)) }

func (s *recordingSurface) SetChannelCode(code string) {
	s.record("code:" + code)
	s.mu.Lock()
	s.code = code
	s.mu.Unlock()
}

func (s *recordingSurface) PowerOn(time.Duration) { s.record("power_on") }

// countingRevealer counts reveals per channel. When gate is set, reveals
// signal started and block until gate is closed.
type countingRevealer struct {
	mu      sync.Mutex
	counts  map[domain.Channel]int
	gate    chan struct{}
	started chan domain.Channel
	panicOn domain.Channel
	failOn  domain.Channel
	err     error
	surface *recordingSurface
}

func newCountingRevealer() *countingRevealer {
	return &countingRevealer{counts: map[domain.Channel]int{}}
}

func (r *countingRevealer) Reveal(ctx context.Context, c domain.Channel) error {
	r.mu.Lock()
	r.counts[c]++
	r.mu.Unlock()

	if r.surface != nil {
		r.surface.record("reveal:" + string(c))
	}
	if r.started != nil {
		r.started <- c
	}
	if r.gate != nil {
		select {
		case <-r.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if c == r.panicOn {
		panic("renderer exploded")
	}
	if c == r.failOn {
		return r.err
	}
	return nil
}

func (r *countingRevealer) count(c domain.Channel) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[c]
}

type clearLog struct {
	mu      sync.Mutex
	cleared []domain.Channel
}

func (c *clearLog) ClearTargets(channels ...domain.Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleared = append(c.cleared, channels...)
}

var (
	_ ports.Surface = (*recordingSurface)(nil)
	_ ports.Sleeper = noSleep{}
	_ Revealer      = (*countingRevealer)(nil)
	_ TargetClearer = (*clearLog)(nil)
)
