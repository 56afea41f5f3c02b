package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

// navSpan is the on-screen column range of one channel button.
type navSpan struct {
	channel  domain.Channel
	from, to int
}

func navLabel(c domain.Channel) string {
	return "[" + c.Code() + " " + c.Title() + "]"
}

// renderNavbar draws the channel buttons and reports where each one landed.
func renderNavbar(t Theme, active domain.Channel) (string, []navSpan) {
	var (
		b     strings.Builder
		spans []navSpan
		x     int
	)
	for i, c := range domain.Channels() {
		if i > 0 {
			b.WriteString(" ")
			x++
		}
		label := navLabel(c)
		st := t.NavIdle
		if c == active {
			st = t.NavActive
		}
		b.WriteString(st.Render(label))
		w := lipgloss.Width(label)
		spans = append(spans, navSpan{channel: c, from: x, to: x + w})
		x += w
	}
	return b.String(), spans
}

// hitNav returns the control id under column x.
func hitNav(spans []navSpan, x int) (string, bool) {
	for _, s := range spans {
		if x >= s.from && x < s.to {
			return s.channel.String(), true
		}
	}
	return "", false
}
