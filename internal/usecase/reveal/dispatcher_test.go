package reveal

import (
	"context"
	"strings"
	"testing"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

func testContent() domain.Content {
	return domain.Content{
		Owner:     "Test Owner",
		AboutText: "line one\nline two",
		Projects: []domain.Project{
			{ID: "a", Title: "Alpha", Summary: "first"},
			{ID: "b", Title: "Beta"},
		},
		Skills: sampleSkills(2),
	}
}

func allTargets() []string {
	return []string{domain.TargetAboutText, domain.TargetProjectsIndex, domain.TargetSkillsLog}
}

func TestDispatcher_RoutesToContainers(t *testing.T) {
	s := newFakeSurface(allTargets()...)
	d := NewDispatcher(NewRenderer(&fakeSleeper{}, &seqRand{}, DefaultTiming()), s, testContent())
	ctx := context.Background()

	for _, c := range domain.Channels() {
		if err := d.Reveal(ctx, c); err != nil {
			t.Fatalf("Reveal(%s): %v", c, err)
		}
	}

	if got := s.boxes[domain.TargetAboutText].text(); got != "line one\nline two" {
		t.Fatalf("unexpected about text %q", got)
	}
	if got := s.boxes[domain.TargetProjectsIndex].text(); !strings.Contains(got, "[02] BETA") {
		t.Fatalf("unexpected project index %q", got)
	}
	if len(s.boxes[domain.TargetSkillsLog].Lines()) == 0 {
		t.Fatalf("expected skills log output")
	}
	if s.poweredFor != DefaultTiming().PowerOn {
		t.Fatalf("expected hero power-on effect")
	}
}

func TestDispatcher_MissingContainer(t *testing.T) {
	s := newFakeSurface()
	d := NewDispatcher(NewRenderer(&fakeSleeper{}, &seqRand{}, DefaultTiming()), s, testContent())

	err := d.Reveal(context.Background(), domain.ChannelSkills)
	if !domain.IsKind(err, domain.KindMissingTarget) {
		t.Fatalf("expected missing target, got %v", err)
	}
}

func TestDispatcher_SectionLeadBeforeAbout(t *testing.T) {
	s := newFakeSurface(allTargets()...)
	sl := &fakeSleeper{}
	tm := DefaultTiming()
	d := NewDispatcher(NewRenderer(sl, &seqRand{}, tm), s, testContent())

	if err := d.Reveal(context.Background(), domain.ChannelAbout); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sl.waits) == 0 || sl.waits[0] != tm.SectionLead {
		t.Fatalf("expected lead delay first, got %v", sl.waits)
	}
}

func TestDispatcher_ClearTargets(t *testing.T) {
	s := newFakeSurface(allTargets()...)
	d := NewDispatcher(NewRenderer(&fakeSleeper{}, &seqRand{}, DefaultTiming()), s, testContent())
	ctx := context.Background()

	_ = d.Reveal(ctx, domain.ChannelAbout)
	_ = d.Reveal(ctx, domain.ChannelSkills)
	d.ClearTargets(domain.ChannelAbout)

	if len(s.boxes[domain.TargetAboutText].Lines()) != 0 {
		t.Fatalf("expected about cleared")
	}
	if len(s.boxes[domain.TargetSkillsLog].Lines()) == 0 {
		t.Fatalf("skills should be untouched")
	}
	if d.Targets(domain.ChannelContact) != nil {
		t.Fatalf("contact has no reveal targets")
	}
}

func TestProjectIndex(t *testing.T) {
	got := ProjectIndex(testContent().Projects)
	want := "> ls ~/projects\n[01] ALPHA :: first\n[02] BETA\n> 2 entries"
	if got != want {
		t.Fatalf("ProjectIndex = %q, want %q", got, want)
	}
}
