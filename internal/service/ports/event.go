package ports

import (
	"context"

	"github.com/stpnv0/StudioDesk/internal/domain"
)

// EventStore persists events with their services and team. Create assigns the
// canonical id; Update fails with domain.ErrConflict on a stale version.
type EventStore interface {
	Create(ctx context.Context, e domain.Event) (domain.Event, error)
	Update(ctx context.Context, e domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Event, error)
}
