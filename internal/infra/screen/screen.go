// Package screen is the in-memory render surface the orchestrator and reveals
// draw into and the TUI paints from.
package screen

import (
	"sync"
	"time"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
)

type Screen struct {
	mu    sync.RWMutex
	boxes map[string]*box

	active       domain.Channel
	code         string
	staticUntil  time.Time
	powerOnUntil time.Time
	glitchUntil  time.Time

	scrollTo  domain.Channel
	scrollSeq uint64

	now     func() time.Time
	changes chan struct{}
}

type Option func(*Screen)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Screen) { s.now = now }
}

// New creates a screen with the given container ids.
func New(ids []string, opts ...Option) *Screen {
	s := &Screen{
		boxes:   make(map[string]*box, len(ids)),
		active:  domain.DefaultChannel,
		code:    domain.DefaultChannel.Code(),
		now:     time.Now,
		changes: make(chan struct{}, 1),
	}
	for _, id := range ids {
		s.boxes[id] = &box{s: s}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default creates a screen with every container the reveals use.
func Default(opts ...Option) *Screen {
	return New([]string{
		domain.TargetAboutText,
		domain.TargetProjectsIndex,
		domain.TargetSkillsLog,
		domain.TargetContactStatus,
	}, opts...)
}

var _ ports.Surface = (*Screen)(nil)

// Changes fires after any mutation. Notifications coalesce: one pending
// signal covers any number of writes.
func (s *Screen) Changes() <-chan struct{} { return s.changes }

func (s *Screen) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

func (s *Screen) Container(id string) (ports.Container, error) {
	s.mu.RLock()
	b, ok := s.boxes[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.MissingTarget("screen.container", id)
	}
	return b, nil
}

func (s *Screen) StartTransition(d time.Duration) {
	s.mu.Lock()
	s.staticUntil = s.now().Add(d)
	s.mu.Unlock()
	s.notify()
}

func (s *Screen) SetActive(c domain.Channel) {
	s.mu.Lock()
	s.active = c
	s.mu.Unlock()
	s.notify()
}

func (s *Screen) ScrollIntoView(c domain.Channel) {
	s.mu.Lock()
	s.scrollTo = c
	s.scrollSeq++
	s.mu.Unlock()
	s.notify()
}

func (s *Screen) SetChannelCode(code string) {
	s.mu.Lock()
	s.code = code
	s.mu.Unlock()
	s.notify()
}

func (s *Screen) PowerOn(d time.Duration) {
	s.mu.Lock()
	s.powerOnUntil = s.now().Add(d)
	s.mu.Unlock()
	s.notify()
}

// Glitch flickers the hero title for d.
func (s *Screen) Glitch(d time.Duration) {
	s.mu.Lock()
	s.glitchUntil = s.now().Add(d)
	s.mu.Unlock()
	s.notify()
}

// State is a consistent copy of everything the painter needs.
type State struct {
	Active     domain.Channel
	Code       string
	Static     bool
	PoweringOn bool
	Glitching  bool
	ScrollTo   domain.Channel
	ScrollSeq  uint64
}

func (s *Screen) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now()
	return State{
		Active:     s.active,
		Code:       s.code,
		Static:     now.Before(s.staticUntil),
		PoweringOn: now.Before(s.powerOnUntil),
		Glitching:  now.Before(s.glitchUntil),
		ScrollTo:   s.scrollTo,
		ScrollSeq:  s.scrollSeq,
	}
}

// Lines returns a copy of a container's lines, or nil for unknown ids.
func (s *Screen) Lines(id string) []domain.Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boxes[id]
	if !ok {
		return nil
	}
	out := make([]domain.Line, len(b.lines))
	copy(out, b.lines)
	return out
}

type box struct {
	s     *Screen
	lines []domain.Line
}

func (b *box) Clear() {
	b.s.mu.Lock()
	b.lines = nil
	b.s.mu.Unlock()
	b.s.notify()
}

func (b *box) AppendRune(r rune) {
	b.s.mu.Lock()
	if len(b.lines) == 0 {
		b.lines = append(b.lines, domain.Line{})
	}
	b.lines[len(b.lines)-1].Text += string(r)
	b.s.mu.Unlock()
	b.s.notify()
}

func (b *box) AppendBreak() {
	b.s.mu.Lock()
	b.lines = append(b.lines, domain.Line{})
	b.s.mu.Unlock()
	b.s.notify()
}

func (b *box) AppendLine(l domain.Line) int {
	b.s.mu.Lock()
	b.lines = append(b.lines, l)
	i := len(b.lines) - 1
	b.s.mu.Unlock()
	b.s.notify()
	return i
}

// SetLine replaces line i. Out-of-range indexes are ignored, which happens
// when a reset clears the container under a running reveal.
func (b *box) SetLine(i int, l domain.Line) {
	b.s.mu.Lock()
	if i >= 0 && i < len(b.lines) {
		b.lines[i] = l
	}
	b.s.mu.Unlock()
	b.s.notify()
}

func (b *box) Lines() []domain.Line {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()
	out := make([]domain.Line, len(b.lines))
	copy(out, b.lines)
	return out
}
