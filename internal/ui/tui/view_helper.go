package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderLines(t Theme, lines []domain.Line) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, t.Line(l.Style).Render(l.Text))
	}
	return strings.Join(out, "\n")
}

// markdown renders project details, caching one renderer per wrap width.
type markdown struct {
	width int
	r     *glamour.TermRenderer
	cache map[string]string
}

func (md *markdown) render(key, src string, width int) string {
	if width < 20 {
		width = 20
	}
	if md.r == nil || md.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return lipgloss.NewStyle().Width(width).Render(src)
		}
		md.r, md.width, md.cache = r, width, map[string]string{}
	}
	if out, ok := md.cache[key]; ok {
		return out
	}
	out, err := md.r.Render(src)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(src)
	}
	out = strings.Trim(out, "\n")
	md.cache[key] = out
	return out
}
