package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/infra/screen"
	"github.com/pranay0703/pranay0703.github.io/internal/trigger"
)

// page is everything one frame of the scrolling body needs.
type page struct {
	theme   Theme
	width   int
	content domain.Content
	state   screen.State
	lines   func(id string) []domain.Line

	selected int
	expanded bool
	details  func(p domain.Project, width int) string
	contact  string
}

// layout renders every section stacked in channel order and returns the
// top row of each one within the result.
func layout(p page) (string, []trigger.Section) {
	var (
		blocks   []string
		sections []trigger.Section
		row      int
	)
	for _, c := range domain.Channels() {
		block := p.sectionHeader(c) + "\n" + p.section(c)
		sections = append(sections, trigger.Section{Channel: c, Top: row})
		blocks = append(blocks, block)
		row += lipgloss.Height(block) + 1
	}
	return strings.Join(blocks, "\n\n"), sections
}

func topOf(sections []trigger.Section, c domain.Channel) int {
	for _, s := range sections {
		if s.Channel == c {
			return s.Top
		}
	}
	return 0
}

func (p page) sectionHeader(c domain.Channel) string {
	label := fmt.Sprintf("── CH %s // %s ", c.Code(), c.Title())
	if pad := p.width - lipgloss.Width(label); pad > 0 {
		label += strings.Repeat("─", pad)
	}
	return p.theme.Section.Render(label)
}

func (p page) section(c domain.Channel) string {
	switch c {
	case domain.ChannelHero:
		return p.hero()
	case domain.ChannelAbout:
		return p.region(domain.TargetAboutText, "awaiting signal…")
	case domain.ChannelProjects:
		return p.projects()
	case domain.ChannelSkills:
		return p.region(domain.TargetSkillsLog, "diagnostics idle")
	case domain.ChannelContact:
		return p.contactSection()
	default:
		return ""
	}
}

func (p page) hero() string {
	owner := p.content.Owner
	switch {
	case p.state.PoweringOn:
		return p.theme.Static.Render("▒▒▒ POWERING ON ▒▒▒") + "\n" + p.theme.Subtitle.Render(p.content.Tagline)
	case p.state.Glitching:
		owner = shear(owner)
		return p.theme.Static.Render(owner) + "\n" + p.theme.Subtitle.Render(p.content.Tagline)
	}
	return p.theme.Title.Render(owner) + "\n" + p.theme.Subtitle.Render(p.content.Tagline)
}

// shear offsets the second half of s by one cell.
func shear(s string) string {
	r := []rune(s)
	mid := len(r) / 2
	return string(r[:mid]) + " " + string(r[mid:])
}

func (p page) region(id, idle string) string {
	lines := p.lines(id)
	if len(lines) == 0 {
		return p.theme.Help.Render(idle)
	}
	return renderLines(p.theme, lines)
}

func (p page) projects() string {
	var b strings.Builder
	b.WriteString(p.region(domain.TargetProjectsIndex, "> ls ~/projects"))

	cardWidth := p.width - 4
	if cardWidth < 20 {
		cardWidth = 20
	}
	for i, pr := range p.content.Projects {
		body := p.theme.Title.Render(strings.ToUpper(pr.Title)) + "\n" + pr.Summary
		if len(pr.Tech) > 0 {
			body += "\n" + p.theme.Help.Render(strings.Join(pr.Tech, " · "))
		}
		if pr.URL != "" {
			body += "\n" + p.theme.Subtitle.Render(pr.URL)
		}
		st := p.theme.Card
		if i == p.selected {
			st = p.theme.Selected
			if p.expanded && pr.Details != "" && p.details != nil {
				body += "\n\n" + p.details(pr, cardWidth-4)
			}
		}
		b.WriteString("\n")
		b.WriteString(st.Width(cardWidth).Render(body))
	}
	return b.String()
}

func (p page) contactSection() string {
	var b strings.Builder
	if p.content.ContactBanner != "" {
		b.WriteString(p.theme.Readout.Render(p.content.ContactBanner))
		b.WriteString("\n")
	}
	b.WriteString(p.contact)
	if status := p.lines(domain.TargetContactStatus); len(status) > 0 {
		b.WriteString("\n")
		b.WriteString(renderLines(p.theme, status))
	}
	return b.String()
}
