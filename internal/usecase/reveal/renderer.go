// Package reveal holds the one-shot animated renderings played the first time
// a channel is visited. Every routine runs to completion (or until ctx is done)
// before returning, so callers can serialize reveal and bookkeeping.
package reveal

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
)

// GlitchAlphabet is the symbol set used for matrix scrambles.
const GlitchAlphabet = "!@#$%^&*()_+-=[]{}|;:,.<>?/~`"

const (
	barCells            = 10
	defaultCategoryIcon = "🔧"
)

var (
	startupBanner = []string{
		"> INITIALIZING SKILL DIAGNOSTICS...",
		"> SCANNING TECHNICAL CAPABILITIES...",
		"> LOADING EXPERTISE MATRIX...",
		"> READY FOR ANALYSIS",
		"========================================",
	}
	completionBanner = []string{
		"========================================",
		"> DIAGNOSTIC COMPLETE",
		"> ALL SYSTEMS OPERATIONAL",
		"> READY FOR DEPLOYMENT",
	}
)

// Renderer runs the reveal animations against a container.
type Renderer struct {
	sleeper ports.Sleeper
	rand    ports.RandSource
	timing  Timing
}

// NewRenderer builds a renderer that waits through sl and scrambles with rnd.
func NewRenderer(sl ports.Sleeper, rnd ports.RandSource, t Timing) *Renderer {
	return &Renderer{sleeper: sl, rand: rnd, timing: t}
}

func (r *Renderer) Timing() Timing { return r.timing }

// Typewriter clears c and appends text one rune per step, waiting delay after
// each. A newline starts a new line instead of being written.
func (r *Renderer) Typewriter(ctx context.Context, c ports.Container, text string, delay time.Duration) error {
	c.Clear()
	for _, ch := range text {
		if ch == '\n' {
			c.AppendBreak()
		} else {
			c.AppendRune(ch)
		}
		if err := r.sleeper.Sleep(ctx, delay); err != nil {
			return err
		}
	}
	return nil
}

// Matrix reveals text line by line: each line first shows a scramble of the
// same length, glitches a few times, then settles on the real text.
func (r *Renderer) Matrix(ctx context.Context, c ports.Container, text string) error {
	t := r.timing
	c.Clear()

	for _, line := range strings.Split(text, "\n") {
		idx := c.AppendLine(domain.Line{Text: r.scramble(line), Style: domain.StyleGlitch})
		if err := r.sleeper.Sleep(ctx, t.MatrixAppear); err != nil {
			return err
		}

		for step := 0; step < t.MatrixGlitchSteps; step++ {
			if err := r.sleeper.Sleep(ctx, t.MatrixGlitch); err != nil {
				return err
			}
			c.SetLine(idx, domain.Line{Text: r.scramble(line), Style: domain.StyleGlitch})
		}

		if err := r.sleeper.Sleep(ctx, t.MatrixReveal); err != nil {
			return err
		}
		c.SetLine(idx, domain.Line{Text: line, Style: domain.StyleHighlight})

		if err := r.sleeper.Sleep(ctx, t.MatrixSettle); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) scramble(line string) string {
	alpha := []rune(GlitchAlphabet)
	var b strings.Builder
	b.Grow(len(line))
	for _, ch := range line {
		if ch == ' ' {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(alpha[r.rand.IntN(len(alpha))])
	}
	return b.String()
}

// Diagnostics plays the staged skills readout into c.
func (r *Renderer) Diagnostics(ctx context.Context, c ports.Container, skills []domain.SkillCategory) error {
	t := r.timing
	c.Clear()

	for _, s := range startupBanner {
		c.AppendLine(domain.Line{Text: s, Style: domain.StyleBanner})
	}
	if err := r.sleeper.Sleep(ctx, t.DiagStartup); err != nil {
		return err
	}

	for _, cat := range skills {
		c.AppendLine(domain.Line{Text: HeaderLine(cat), Style: domain.StyleHeader})
		if err := r.sleeper.Sleep(ctx, t.DiagHeader); err != nil {
			return err
		}

		for _, e := range cat.Entries {
			if err := r.animateBar(ctx, c, e); err != nil {
				return err
			}
			if err := r.sleeper.Sleep(ctx, t.DiagEntryGap); err != nil {
				return err
			}
		}

		if err := r.sleeper.Sleep(ctx, t.DiagCategoryGap); err != nil {
			return err
		}
	}

	for _, s := range completionBanner {
		c.AppendLine(domain.Line{Text: s, Style: domain.StyleBanner})
	}
	return nil
}

func (r *Renderer) animateBar(ctx context.Context, c ports.Container, e domain.SkillEntry) error {
	t := r.timing
	idx := c.AppendLine(domain.Line{Text: BarLine(e, 0), Style: domain.StyleBar})
	if err := r.sleeper.Sleep(ctx, t.DiagCardAppear); err != nil {
		return err
	}

	steps := t.DiagBarSteps
	if steps < 1 {
		steps = 1
	}
	for k := 1; k <= steps; k++ {
		if err := r.sleeper.Sleep(ctx, t.DiagBarStep); err != nil {
			return err
		}
		c.SetLine(idx, domain.Line{Text: BarLine(e, e.Level*k/steps), Style: domain.StyleBar})
	}
	return nil
}

// HeaderLine formats a category header: "[icon] TITLE  ACTIVE".
func HeaderLine(cat domain.SkillCategory) string {
	icon := cat.Icon
	if icon == "" {
		icon = defaultCategoryIcon
	}
	return fmt.Sprintf("[%s] %s  ACTIVE", icon, cat.Title)
}

// BarLine renders one skill at pct percent. The bar width is derived from pct
// so the label and the fill never disagree.
func BarLine(e domain.SkillEntry, pct int) string {
	filled := int(math.Round(float64(pct) / 100 * barCells))
	if filled > barCells {
		filled = barCells
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barCells-filled)

	name := e.Name
	if e.Icon != "" {
		name = e.Icon + " " + name
	}
	return fmt.Sprintf("  %-28s [%s] %3d%% %s", name, bar, pct, domain.LevelText(e.Level))
}
