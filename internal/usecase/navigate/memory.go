package navigate

import (
	"sync"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

// TargetClearer wipes the rendered output of a channel's reveal.
type TargetClearer interface {
	ClearTargets(channels ...domain.Channel)
}

// Memory records which channels have already played their one-shot reveal.
type Memory struct {
	mu      sync.Mutex
	played  map[domain.Channel]struct{}
	clearer TargetClearer
}

func NewMemory(clearer TargetClearer) *Memory {
	return &Memory{
		played:  map[domain.Channel]struct{}{},
		clearer: clearer,
	}
}

func (m *Memory) HasPlayed(c domain.Channel) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.played[c]
	return ok
}

func (m *Memory) MarkPlayed(c domain.Channel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.played[c] = struct{}{}
}

// Played lists played channels in ordinal order.
func (m *Memory) Played() []domain.Channel {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Channel, 0, len(m.played))
	for _, c := range domain.Channels() {
		if _, ok := m.played[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets every played channel and clears all reveal output, including
// output left behind by a reveal that never completed.
func (m *Memory) Reset() {
	m.mu.Lock()
	m.played = map[domain.Channel]struct{}{}
	m.mu.Unlock()

	if m.clearer != nil {
		m.clearer.ClearTargets(domain.Channels()...)
	}
}
