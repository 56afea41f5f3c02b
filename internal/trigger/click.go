package trigger

import (
	"context"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/navigate"
)

// Click maps a navigation control's channel id to a request.
type Click struct {
	nav Navigator
}

func NewClick(nav Navigator) Click { return Click{nav: nav} }

// Resolve parses a control id, falling back to the default channel.
func (Click) Resolve(controlID string) domain.Channel {
	c, err := domain.ParseChannel(controlID)
	if err != nil {
		return domain.DefaultChannel
	}
	return c
}

func (c Click) Handle(ctx context.Context, controlID string) (navigate.Outcome, error) {
	return c.nav.RequestChannel(ctx, c.Resolve(controlID))
}
