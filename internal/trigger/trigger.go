// Package trigger turns raw input (clicks, keys, scroll positions) into
// channel requests. Adapters hold no navigation state of their own beyond
// what they need to debounce.
package trigger

import (
	"context"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/usecase/navigate"
)

// Navigator is the part of the orchestrator adapters call into.
type Navigator interface {
	RequestChannel(ctx context.Context, target domain.Channel) (navigate.Outcome, error)
	Current() domain.Channel
	Busy() bool
}

var _ Navigator = (*navigate.Orchestrator)(nil)
