package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/ledger"
	"github.com/stpnv0/StudioDesk/internal/optimistic"
	"github.com/stpnv0/StudioDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type InvoiceService struct {
	store  ports.InvoiceStore
	ledger *ledger.Ledger
	coord  *optimistic.Coordinator[domain.Invoice]
	opts   options
	logger logger.Logger
}

func NewInvoiceService(store ports.InvoiceStore, l *ledger.Ledger, reporter ports.Reporter, log logger.Logger, opts ...Option) *InvoiceService {
	o := buildOptions(opts)
	return &InvoiceService{
		store:  store,
		ledger: l,
		coord: optimistic.New[domain.Invoice]("invoices", store, reporter, log,
			coordinatorOptions(o, domain.ErrInvoiceNotFound, ledger.NormalizeInvoice)...),
		opts:   o,
		logger: log,
	}
}

func (s *InvoiceService) Name() string { return s.coord.Name() }

func (s *InvoiceService) Refresh(ctx context.Context) error {
	return s.coord.Refresh(ctx, s.store)
}

func (s *InvoiceService) List(_ context.Context) ([]domain.Invoice, error) {
	return s.coord.Current().Items(), nil
}

func (s *InvoiceService) Get(_ context.Context, id string) (domain.Invoice, error) {
	return s.coord.Get(id)
}

// Outstanding returns invoices that still have a positive balance.
func (s *InvoiceService) Outstanding(_ context.Context) []domain.Invoice {
	var out []domain.Invoice
	for _, inv := range s.coord.Current().Items() {
		if ledger.Balance(inv.Amount, inv.Paid) > 0 {
			out = append(out, inv)
		}
	}
	return out
}

func (s *InvoiceService) Create(ctx context.Context, input domain.CreateInvoiceInput) (domain.Invoice, error) {
	if err := domain.Validate(input); err != nil {
		return domain.Invoice{}, err
	}

	inv := domain.Invoice{
		ID:        localID(),
		Client:    input.Client,
		EventID:   input.EventID,
		Amount:    input.Amount,
		Notes:     input.Notes,
		CreatedAt: s.opts.now(),
	}

	res, err := s.coord.Apply(ctx, optimistic.Create(inv))
	if err != nil {
		return domain.Invoice{}, err
	}
	return res.Item, nil
}

func (s *InvoiceService) Update(ctx context.Context, id string, input domain.UpdateInvoiceInput) (domain.Invoice, error) {
	if err := domain.Validate(input); err != nil {
		return domain.Invoice{}, err
	}

	res, err := s.coord.Modify(ctx, id, func(inv domain.Invoice) (domain.Invoice, error) {
		inv.Client = input.Client
		inv.Amount = input.Amount
		inv.Notes = input.Notes
		if err := s.checkOverpayment(inv); err != nil {
			return domain.Invoice{}, err
		}
		return inv, nil
	})
	if err != nil {
		return domain.Invoice{}, err
	}
	return res.Item, nil
}

// Replace overwrites the editable fields and appends payments that are new.
// Payments already recorded must be carried unchanged.
func (s *InvoiceService) Replace(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	if inv.ID == "" {
		return domain.Invoice{}, fmt.Errorf("%w: invoice id is required", domain.ErrValidation)
	}
	if err := domain.Validate(domain.CreateInvoiceInput{
		Client: inv.Client, EventID: inv.EventID, Amount: inv.Amount, Notes: inv.Notes,
	}); err != nil {
		return domain.Invoice{}, err
	}

	res, err := s.coord.Modify(ctx, inv.ID, func(current domain.Invoice) (domain.Invoice, error) {
		if inv.Version != 0 && inv.Version != current.Version {
			return domain.Invoice{}, fmt.Errorf("%w: invoice %s is at version %d, got %d",
				domain.ErrConflict, inv.ID, current.Version, inv.Version)
		}
		payments, err := s.ledger.MergeInvoicePayments(current.Payments, inv.Payments)
		if err != nil {
			return domain.Invoice{}, err
		}

		next := inv.Clone()
		next.Payments = payments
		next = ledger.NormalizeInvoice(next)
		next.Number = current.Number
		next.Version = current.Version
		next.CreatedAt = current.CreatedAt
		if err := s.checkOverpayment(next); err != nil {
			return domain.Invoice{}, err
		}
		return next, nil
	})
	if err != nil {
		return domain.Invoice{}, err
	}
	return res.Item, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	_, err := s.coord.Apply(ctx, optimistic.Delete[domain.Invoice](id))
	return err
}

// RecordPayment appends one payment. Paid and status are visible right away
// and roll back together if the store refuses the change.
func (s *InvoiceService) RecordPayment(ctx context.Context, id string, input domain.PaymentInput) (domain.Invoice, error) {
	res, err := s.coord.Modify(ctx, id, func(inv domain.Invoice) (domain.Invoice, error) {
		return s.ledger.AppendInvoicePayment(inv, input)
	})
	if err != nil {
		return domain.Invoice{}, err
	}

	s.logger.Info("payment recorded",
		logger.String("invoice_id", res.Item.ID),
		logger.Any("amount", input.Amount),
		logger.Any("paid", res.Item.Paid),
		logger.String("status", string(res.Item.Status)),
	)
	return res.Item, nil
}

func (s *InvoiceService) checkOverpayment(inv domain.Invoice) error {
	if s.ledger.Policy() != ledger.RejectOverpayment {
		return nil
	}
	paid, err := ledger.SumPayments(inv.Payments)
	if err != nil {
		return err
	}
	if paid > inv.Amount {
		return fmt.Errorf("%w: amount %d is below the %d already paid", domain.ErrValidation, inv.Amount, paid)
	}
	return nil
}
