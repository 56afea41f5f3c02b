package reveal

import (
	"context"
	"strings"
	"time"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
)

type fakeContainer struct {
	lines []domain.Line
}

func (c *fakeContainer) Clear() { c.lines = nil }

func (c *fakeContainer) AppendRune(r rune) {
	if len(c.lines) == 0 {
		c.lines = append(c.lines, domain.Line{})
	}
	c.lines[len(c.lines)-1].Text += string(r)
}

func (c *fakeContainer) AppendBreak() { c.lines = append(c.lines, domain.Line{}) }

func (c *fakeContainer) AppendLine(l domain.Line) int {
	c.lines = append(c.lines, l)
	return len(c.lines) - 1
}

func (c *fakeContainer) SetLine(i int, l domain.Line) { c.lines[i] = l }

func (c *fakeContainer) Lines() []domain.Line {
	out := make([]domain.Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *fakeContainer) text() string {
	parts := make([]string, 0, len(c.lines))
	for _, l := range c.lines {
		parts = append(parts, l.Text)
	}
	return strings.Join(parts, "\n")
}

// fakeSleeper never blocks; it records each wait and can observe state at
// every suspension point.
type fakeSleeper struct {
	waits  []time.Duration
	onWait func()
}

func (s *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	if s.onWait != nil {
		s.onWait()
	}
	return ctx.Err()
}

func (s *fakeSleeper) total() time.Duration {
	var sum time.Duration
	for _, d := range s.waits {
		sum += d
	}
	return sum
}

type seqRand struct{ n int }

func (r *seqRand) IntN(n int) int {
	r.n++
	return r.n % n
}

type fakeSurface struct {
	boxes      map[string]*fakeContainer
	poweredFor time.Duration
}

func newFakeSurface(ids ...string) *fakeSurface {
	s := &fakeSurface{boxes: map[string]*fakeContainer{}}
	for _, id := range ids {
		s.boxes[id] = &fakeContainer{}
	}
	return s
}

func (s *fakeSurface) Container(id string) (ports.Container, error) {
	b, ok := s.boxes[id]
	if !ok {
		return nil, domain.MissingTarget("fake.container", id)
	}
	return b, nil
}

func (s *fakeSurface) StartTransition(time.Duration) {}
func (s *fakeSurface) SetActive(domain.Channel) {}
func (s *fakeSurface) ScrollIntoView(domain.Channel) {}
func (s *fakeSurface) SetChannelCode(string) {}
func (s *fakeSurface) PowerOn(d time.Duration) { s.poweredFor = d }

var (
	_ ports.Container  = (*fakeContainer)(nil)
	_ ports.Surface    = (*fakeSurface)(nil)
	_ ports.Sleeper    = (*fakeSleeper)(nil)
	_ ports.RandSource = (*seqRand)(nil)
)
