package ports

import (
	"context"

	"github.com/stpnv0/StudioDesk/internal/domain"
)

type TeamStore interface {
	Create(ctx context.Context, l domain.TeamLedger) (domain.TeamLedger, error)
	Update(ctx context.Context, l domain.TeamLedger) (domain.TeamLedger, error)
	Delete(ctx context.Context, memberID string) error
	List(ctx context.Context) ([]domain.TeamLedger, error)
}
