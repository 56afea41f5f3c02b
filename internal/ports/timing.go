package ports

import (
	"context"
	"time"
)

// Sleeper suspends the caller for d or until ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RandSource picks a uniform int in [0, n).
type RandSource interface {
	IntN(n int) int
}
