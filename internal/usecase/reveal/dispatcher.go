package reveal

import (
	"context"
	"fmt"
	"strings"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
)

// Dispatcher maps a channel to its one-shot reveal.
type Dispatcher struct {
	r       *Renderer
	surface ports.Surface
	content domain.Content
}

func NewDispatcher(r *Renderer, s ports.Surface, content domain.Content) *Dispatcher {
	return &Dispatcher{r: r, surface: s, content: content}
}

// Targets lists the containers a channel's reveal writes into.
func (d *Dispatcher) Targets(c domain.Channel) []string {
	switch c {
	case domain.ChannelAbout:
		return []string{domain.TargetAboutText}
	case domain.ChannelProjects:
		return []string{domain.TargetProjectsIndex}
	case domain.ChannelSkills:
		return []string{domain.TargetSkillsLog}
	default:
		return nil
	}
}

// Reveal runs c's routine to completion. Channels without a routine return nil.
func (d *Dispatcher) Reveal(ctx context.Context, c domain.Channel) error {
	t := d.r.Timing()

	switch c {
	case domain.ChannelHero:
		d.surface.PowerOn(t.PowerOn)
		return nil

	case domain.ChannelAbout:
		box, err := d.surface.Container(domain.TargetAboutText)
		if err != nil {
			return err
		}
		if err := d.r.sleeper.Sleep(ctx, t.SectionLead); err != nil {
			return err
		}
		return d.r.Matrix(ctx, box, d.content.AboutText)

	case domain.ChannelProjects:
		box, err := d.surface.Container(domain.TargetProjectsIndex)
		if err != nil {
			return err
		}
		return d.r.Typewriter(ctx, box, ProjectIndex(d.content.Projects), t.TypeChar)

	case domain.ChannelSkills:
		box, err := d.surface.Container(domain.TargetSkillsLog)
		if err != nil {
			return err
		}
		if err := d.r.sleeper.Sleep(ctx, t.SectionLead); err != nil {
			return err
		}
		return d.r.Diagnostics(ctx, box, d.content.Skills)
	}
	return nil
}

// ClearTargets wipes the rendered output of the given channels' reveals.
func (d *Dispatcher) ClearTargets(channels ...domain.Channel) {
	for _, c := range channels {
		for _, id := range d.Targets(c) {
			if box, err := d.surface.Container(id); err == nil {
				box.Clear()
			}
		}
	}
}

// ProjectIndex is the directory-style listing typed out on the projects channel.
func ProjectIndex(projects []domain.Project) string {
	var b strings.Builder
	b.WriteString("> ls ~/projects\n")
	for i, p := range projects {
		b.WriteString(fmt.Sprintf("[%02d] %s", i+1, strings.ToUpper(p.Title)))
		if p.Summary != "" {
			b.WriteString(" :: ")
			b.WriteString(p.Summary)
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("> %d entries", len(projects)))
	return b.String()
}
