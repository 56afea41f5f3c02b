// Package clock provides the real-time Sleeper and random source used by reveals.
package clock

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pranay0703/pranay0703.github.io/internal/ports"
)

type Sleeper struct{}

var _ ports.Sleeper = Sleeper{}

// Sleep waits for d or until ctx is done. Non-positive durations only check ctx.
func (Sleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type Rand struct{}

var _ ports.RandSource = Rand{}

func (Rand) IntN(n int) int { return rand.IntN(n) }
