package tui

import (
	"log/slog"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/infra/screen"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/navigate"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/reveal"
)

type Deps struct {
	Orchestrator *navigate.Orchestrator
	Screen       *screen.Screen
	Renderer     *reveal.Renderer
	Content      domain.Content
	Motion       domain.MotionConfig

	Sleeper ports.Sleeper
	Rand    ports.RandSource
	Outbox  ports.Outbox // optional

	Logger *slog.Logger
	Debug  bool
}
