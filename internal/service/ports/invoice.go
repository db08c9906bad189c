package ports

import (
	"context"

	"github.com/stpnv0/StudioDesk/internal/domain"
)

// InvoiceStore persists invoices and their append-only payments. Create
// assigns the canonical id and invoice number.
type InvoiceStore interface {
	Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error)
	Update(ctx context.Context, inv domain.Invoice) (domain.Invoice, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Invoice, error)
}
