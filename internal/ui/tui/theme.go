package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

// Theme is the green-phosphor CRT palette.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Toast    lipgloss.Style

	NavIdle   lipgloss.Style
	NavActive lipgloss.Style
	Readout   lipgloss.Style
	Static    lipgloss.Style
	Section   lipgloss.Style

	lines map[domain.LineStyle]lipgloss.Style
}

var (
	phosphor    = lipgloss.Color("#33ff66")
	phosphorDim = lipgloss.Color("#1f8f3f")
	cyan        = lipgloss.Color("#00e5ff")
	amber       = lipgloss.Color("#ffb000")
	noise       = lipgloss.Color("#5a5a5a")
)

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(phosphor),
		Subtitle: lipgloss.NewStyle().Faint(true).Foreground(phosphorDim),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(phosphorDim),
		Selected: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(cyan),
		Toast: lipgloss.NewStyle().Foreground(amber),

		NavIdle:   lipgloss.NewStyle().Foreground(phosphorDim),
		NavActive: lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(phosphor),
		Readout:   lipgloss.NewStyle().Bold(true).Foreground(amber),
		Static:    lipgloss.NewStyle().Foreground(noise),
		Section:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(phosphor),

		lines: map[domain.LineStyle]lipgloss.Style{
			domain.StylePlain:     lipgloss.NewStyle().Foreground(phosphor),
			domain.StyleGlitch:    lipgloss.NewStyle().Foreground(phosphorDim),
			domain.StyleHighlight: lipgloss.NewStyle().Bold(true).Foreground(cyan),
			domain.StyleBanner:    lipgloss.NewStyle().Foreground(amber),
			domain.StyleHeader:    lipgloss.NewStyle().Bold(true).Foreground(cyan),
			domain.StyleBar:       lipgloss.NewStyle().Foreground(phosphor),
			domain.StyleStatus:    lipgloss.NewStyle().Bold(true).Foreground(amber),
		},
	}
}

func (t Theme) Line(s domain.LineStyle) lipgloss.Style {
	if st, ok := t.lines[s]; ok {
		return st
	}
	return t.lines[domain.StylePlain]
}
