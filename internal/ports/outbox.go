package ports

import (
	"context"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

// Outbox keeps a local record of simulated contact transmissions.
type Outbox interface {
	Save(ctx context.Context, msg domain.ContactMessage) (id string, err error)
	List(ctx context.Context, limit int) ([]domain.ContactMessage, error)
}
