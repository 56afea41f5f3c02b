package navigate

import (
	"testing"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

func TestMemory_MarkAndReset(t *testing.T) {
	cl := &clearLog{}
	m := NewMemory(cl)

	if m.HasPlayed(domain.ChannelAbout) {
		t.Fatalf("memory must start empty")
	}

	m.MarkPlayed(domain.ChannelSkills)
	m.MarkPlayed(domain.ChannelAbout)
	m.MarkPlayed(domain.ChannelAbout)

	played := m.Played()
	if len(played) != 2 || played[0] != domain.ChannelAbout || played[1] != domain.ChannelSkills {
		t.Fatalf("unexpected played list %v", played)
	}

	m.Reset()
	if m.HasPlayed(domain.ChannelAbout) || m.HasPlayed(domain.ChannelSkills) {
		t.Fatalf("expected reset to clear memory")
	}
	if len(cl.cleared) != len(domain.Channels()) {
		t.Fatalf("expected reset to clear every channel's targets, got %v", cl.cleared)
	}
}

func TestMemory_NilClearer(t *testing.T) {
	m := NewMemory(nil)
	m.MarkPlayed(domain.ChannelHero)
	m.Reset()
	if len(m.Played()) != 0 {
		t.Fatalf("expected empty memory")
	}
}
