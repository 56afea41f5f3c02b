package cli

import (
	"log/slog"
	"time"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/infra/clock"
	"github.com/pranay0703/pranay0703.github.io/internal/infra/content"
	"github.com/pranay0703/pranay0703.github.io/internal/infra/screen"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/navigate"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/reveal"
)

// station is the wired navigation core shared by the TUI and headless commands.
type station struct {
	content    domain.Content
	motion     domain.MotionConfig
	screen     *screen.Screen
	renderer   *reveal.Renderer
	dispatcher *reveal.Dispatcher
	orch       *navigate.Orchestrator
}

func newStation(cfg domain.Config, log *slog.Logger) (*station, error) {
	var loader ports.ContentLoader = content.NewLoader(cfg.Motion)
	c, motion, err := loader.Load(cfg.ContentPath)
	if err != nil {
		return nil, err
	}
	if cfg.Motion.Scale == 0 {
		// --fast beats whatever the content file asks for.
		motion.Scale = 0
	}

	scr := screen.Default()
	sl := clock.Sleeper{}
	r := reveal.NewRenderer(sl, clock.Rand{}, reveal.DefaultTiming().Scaled(motion.Scale))
	d := reveal.NewDispatcher(r, scr, c)
	orch := navigate.New(scr, d, navigate.NewMemory(d), sl,
		navigate.WithLogger(log),
		navigate.WithTransition(scale(navigate.DefaultTransition, motion.Scale), scale(navigate.DefaultStatic, motion.Scale)),
	)

	return &station{
		content:    c,
		motion:     motion,
		screen:     scr,
		renderer:   r,
		dispatcher: d,
		orch:       orch,
	}, nil
}

func scale(d time.Duration, f float64) time.Duration {
	if f <= 0 {
		return 0
	}
	return time.Duration(float64(d) * f)
}
