package trigger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/navigate"
)

type fakeNav struct {
	mu       sync.Mutex
	current  domain.Channel
	busy     bool
	requests []domain.Channel
}

func (n *fakeNav) RequestChannel(_ context.Context, c domain.Channel) (navigate.Outcome, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.requests = append(n.requests, c)
	if n.busy {
		return navigate.DroppedBusy, nil
	}
	n.current = c
	return navigate.Switched, nil
}

func (n *fakeNav) Current() domain.Channel {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *fakeNav) Busy() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.busy
}

var _ Navigator = (*fakeNav)(nil)

// --- click ---

func TestClick_ResolvesAndFallsBack(t *testing.T) {
	nav := &fakeNav{current: domain.ChannelAbout}
	c := NewClick(nav)

	if _, err := c.Handle(context.Background(), "skills"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Handle(context.Background(), "bogus"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Channel{domain.ChannelSkills, domain.DefaultChannel}
	if len(nav.requests) != 2 || nav.requests[0] != want[0] || nav.requests[1] != want[1] {
		t.Fatalf("unexpected requests %v", nav.requests)
	}
}

// --- keyboard ---

func TestKeyboard_Targets(t *testing.T) {
	k := NewKeyboard(&fakeNav{})
	cases := []struct {
		key     string
		current domain.Channel
		want    domain.Channel
		ok      bool
	}{
		{"right", domain.ChannelContact, domain.ChannelHero, true},
		{"ArrowRight", domain.ChannelContact, domain.ChannelHero, true},
		{"left", domain.ChannelHero, domain.ChannelContact, true},
		{"ArrowLeft", domain.ChannelHero, domain.ChannelContact, true},
		{"down", domain.ChannelAbout, domain.ChannelProjects, true},
		{"up", domain.ChannelAbout, domain.ChannelHero, true},
		{"1", domain.ChannelSkills, domain.ChannelHero, true},
		{"4", domain.ChannelHero, domain.ChannelSkills, true},
		{"5", domain.ChannelHero, domain.ChannelContact, true},
		{"6", domain.ChannelHero, "", false},
		{"x", domain.ChannelHero, "", false},
		{"ctrl+c", domain.ChannelHero, "", false},
	}
	for _, c := range cases {
		got, ok := k.Target(c.key, c.current)
		if ok != c.ok || got != c.want {
			t.Errorf("Target(%q, %s) = %s/%v, want %s/%v", c.key, c.current, got, ok, c.want, c.ok)
		}
		if k.Bound(c.key) != c.ok {
			t.Errorf("Bound(%q) = %v, want %v", c.key, !c.ok, c.ok)
		}
	}
}

func TestKeyboard_IgnoredWhileBusy(t *testing.T) {
	nav := &fakeNav{current: domain.ChannelHero, busy: true}
	out, err := NewKeyboard(nav).Handle(context.Background(), "right")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != navigate.DroppedBusy {
		t.Fatalf("expected dropped, got %s", out)
	}
	if len(nav.requests) != 0 {
		t.Fatalf("busy keyboard must not reach the navigator, got %v", nav.requests)
	}
}

type instant struct{}

func (instant) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

type nullSurface struct{}

func newNullSurface() nullSurface { return nullSurface{} }

func (nullSurface) Container(id string) (ports.Container, error) {
	return nil, domain.MissingTarget("null.container", id)
}
func (nullSurface) StartTransition(time.Duration) {}
func (nullSurface) SetActive(domain.Channel) {}
func (nullSurface) ScrollIntoView(domain.Channel) {}
func (nullSurface) SetChannelCode(string) {}
func (nullSurface) PowerOn(time.Duration) {}

func TestKeyboard_WrapsWithOrchestrator(t *testing.T) {
	o := navigate.New(newNullSurface(), nil, nil, instant{})
	k := NewKeyboard(o)
	ctx := context.Background()

	if _, err := k.Handle(ctx, "ArrowLeft"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Current() != domain.ChannelContact {
		t.Fatalf("ArrowLeft from hero should wrap to contact, got %s", o.Current())
	}

	if _, err := k.Handle(ctx, "ArrowRight"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Current() != domain.ChannelHero {
		t.Fatalf("ArrowRight from contact should wrap to hero, got %s", o.Current())
	}
}

// --- scroll ---

var page = []Section{
	{Channel: domain.ChannelHero, Top: 0},
	{Channel: domain.ChannelAbout, Top: 20},
	{Channel: domain.ChannelProjects, Top: 50},
	{Channel: domain.ChannelSkills, Top: 80},
	{Channel: domain.ChannelContact, Top: 140},
}

func TestScroll_Locate(t *testing.T) {
	s := NewScroll(&fakeNav{}, 3)
	cases := []struct {
		pos  int
		want domain.Channel
	}{
		{0, domain.ChannelHero},
		{16, domain.ChannelHero},
		{17, domain.ChannelAbout},
		{49, domain.ChannelProjects},
		{500, domain.ChannelContact},
	}
	for _, c := range cases {
		got, ok := s.Locate(page, c.pos)
		if !ok || got != c.want {
			t.Errorf("Locate(%d) = %s/%v, want %s", c.pos, got, ok, c.want)
		}
	}
	if _, ok := s.Locate(nil, 10); ok {
		t.Fatalf("no sections means no channel")
	}
}

func TestScroll_OnlyRequestsOnChange(t *testing.T) {
	nav := &fakeNav{current: domain.ChannelHero}
	s := NewScroll(nav, 3)
	ctx := context.Background()

	for _, pos := range []int{0, 5, 10, 25, 30, 85, 90} {
		if _, err := s.Observe(ctx, page, pos); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := []domain.Channel{domain.ChannelAbout, domain.ChannelSkills}
	if len(nav.requests) != len(want) {
		t.Fatalf("expected %v, got %v", want, nav.requests)
	}
	for i := range want {
		if nav.requests[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, nav.requests)
		}
	}
}

func TestScroll_SuppressedAfterProgrammaticScroll(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	nav := &fakeNav{current: domain.ChannelHero}
	s := NewScroll(nav, 3, WithClock(func() time.Time { return now }), WithSuppressWindow(time.Second))

	s.Programmatic(domain.ChannelSkills)

	// the orchestrator's own scroll passes through projects on its way
	if _, ok := s.Pending(page, 55); ok {
		t.Fatalf("expected suppression during programmatic scroll")
	}

	now = now.Add(2 * time.Second)
	if _, ok := s.Pending(page, 85); ok {
		t.Fatalf("landing on the programmatic target is not a new request")
	}
	c, ok := s.Pending(page, 145)
	if !ok || c != domain.ChannelContact {
		t.Fatalf("expected user scroll to contact after window, got %s/%v", c, ok)
	}
	if s.Last() != domain.ChannelContact {
		t.Fatalf("expected last recorded contact, got %s", s.Last())
	}
}

func TestScroll_IgnoredWhileBusy(t *testing.T) {
	nav := &fakeNav{current: domain.ChannelHero, busy: true}
	s := NewScroll(nav, 3)
	if _, ok := s.Pending(page, 100); ok {
		t.Fatalf("expected busy navigator to suppress scroll requests")
	}
	if s.Last() != domain.ChannelHero {
		t.Fatalf("busy observation must not be recorded")
	}
}

func TestScroll_AtEndKeepsVisibleRecordedChannel(t *testing.T) {
	nav := &fakeNav{current: domain.ChannelHero}
	s := NewScroll(nav, 3, WithSuppressWindow(0))

	// contact starts past the furthest offset the page can reach
	s.Programmatic(domain.ChannelContact)
	if c, ok := s.PendingAtEnd(page, 100); ok {
		t.Fatalf("contact is on screen at the end, got request for %s", c)
	}
	if c, ok := s.Pending(page, 100); !ok || c != domain.ChannelSkills {
		t.Fatalf("plain Pending should still locate skills, got %s/%v", c, ok)
	}
}

func TestScroll_AtEndChoosesLastSection(t *testing.T) {
	nav := &fakeNav{current: domain.ChannelHero}
	s := NewScroll(nav, 3)

	c, ok := s.PendingAtEnd(page, 100)
	if !ok || c != domain.ChannelContact {
		t.Fatalf("expected contact at the end of the page, got %s/%v", c, ok)
	}
	if _, ok := s.PendingAtEnd(nil, 100); ok {
		t.Fatalf("no sections means no channel")
	}
}

func TestScroll_DroppedRequestIsRetried(t *testing.T) {
	nav := &fakeNav{current: domain.ChannelHero}
	s := NewScroll(nav, 3)
	ctx := context.Background()

	// another trigger takes the orchestrator between Pending and the request
	c, ok := s.Pending(page, 25)
	if !ok || c != domain.ChannelAbout {
		t.Fatalf("expected about, got %s/%v", c, ok)
	}
	s.Settle(c, navigate.DroppedBusy)
	if s.Last() != domain.ChannelHero {
		t.Fatalf("dropped request should roll back, last=%s", s.Last())
	}

	out, err := s.Observe(ctx, page, 30)
	if err != nil || out != navigate.Switched {
		t.Fatalf("expected a fresh switch, got %s err=%v", out, err)
	}
	if s.Last() != domain.ChannelAbout {
		t.Fatalf("expected last about, got %s", s.Last())
	}
}

func TestScroll_SettleKeepsProgrammaticTarget(t *testing.T) {
	s := NewScroll(&fakeNav{current: domain.ChannelHero}, 3, WithSuppressWindow(0))

	c, _ := s.Pending(page, 55)
	s.Programmatic(c)
	s.Settle(c, navigate.DroppedBusy)

	if s.Last() != domain.ChannelProjects {
		t.Fatalf("a switch to the same channel already landed, last=%s", s.Last())
	}
}
