package service

import (
	"context"
	"testing"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/ledger"
	"github.com/stpnv0/StudioDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInvoiceService(t *testing.T, policy ledger.Policy) (*InvoiceService, *mocks.MockInvoiceStore, *mocks.MockReporter) {
	t.Helper()
	store := mocks.NewMockInvoiceStore(t)
	reporter := mocks.NewMockReporter(t)
	svc := NewInvoiceService(store, ledger.New(policy), reporter, newTestLogger(t))

	store.EXPECT().List(mock.Anything).Return(nil, nil).Once()
	mustRefresh(t, svc.Refresh)
	return svc, store, reporter
}

func TestInvoiceService_PaymentLifecycle(t *testing.T) {
	svc, store, _ := newInvoiceService(t, ledger.RejectOverpayment)
	ctx := context.Background()

	store.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, inv domain.Invoice) (domain.Invoice, error) {
			inv.ID = "inv-1"
			inv.Number = "INV-20260314-ABCDEF"
			inv.Version = 1
			return inv, nil
		})
	store.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(echoInvoice)

	inv, err := svc.Create(ctx, domain.CreateInvoiceInput{Client: "Acme", Amount: 5000})
	require.NoError(t, err)
	assert.Equal(t, "inv-1", inv.ID)
	assert.Equal(t, domain.PaymentPending, inv.Status)

	inv, err = svc.RecordPayment(ctx, "inv-1", domain.PaymentInput{Amount: 2000, Date: "2026-03-14"})
	require.NoError(t, err)
	assert.Equal(t, int64(2000), inv.Paid)
	assert.Equal(t, domain.PaymentPartial, inv.Status)
	assert.Equal(t, int64(3000), ledger.Balance(inv.Amount, inv.Paid))

	inv, err = svc.RecordPayment(ctx, "inv-1", domain.PaymentInput{Amount: 3000, Date: "2026-03-15"})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), inv.Paid)
	assert.Equal(t, domain.PaymentPaid, inv.Status)
	assert.Len(t, inv.Payments, 2)
	assert.Equal(t, int64(3), inv.Version)

	_, err = svc.RecordPayment(ctx, "inv-1", domain.PaymentInput{Amount: 1, Date: "2026-03-16"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Empty(t, svc.Outstanding(ctx))
}

func TestInvoiceService_RecordPayment_RollbackRestoresPaidAndStatus(t *testing.T) {
	svc, store, reporter := newInvoiceService(t, ledger.RejectOverpayment)
	ctx := context.Background()

	store.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, inv domain.Invoice) (domain.Invoice, error) {
			inv.ID = "inv-1"
			return inv, nil
		})
	_, err := svc.Create(ctx, domain.CreateInvoiceInput{Client: "Acme", Amount: 10000})
	require.NoError(t, err)
	before, _ := svc.List(ctx)

	store.EXPECT().Update(mock.Anything, mock.Anything).
		Return(domain.Invoice{}, &domain.RejectionError{Status: 400, Message: "ledger closed"})
	reporter.EXPECT().Report(mock.Anything, "ledger closed").Return()

	_, err = svc.RecordPayment(ctx, "inv-1", domain.PaymentInput{Amount: 4000, Date: "2026-03-14"})

	require.Error(t, err)
	after, _ := svc.List(ctx)
	assert.Equal(t, before, after)
	assert.Equal(t, int64(0), after[0].Paid)
	assert.Equal(t, domain.PaymentPending, after[0].Status)
	assert.Len(t, svc.Outstanding(ctx), 1)
}

func TestInvoiceService_RecordPayment_Invalid(t *testing.T) {
	svc, store, _ := newInvoiceService(t, ledger.RejectOverpayment)
	store.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, inv domain.Invoice) (domain.Invoice, error) {
			inv.ID = "inv-1"
			return inv, nil
		})
	_, err := svc.Create(context.Background(), domain.CreateInvoiceInput{Client: "Acme", Amount: 100})
	require.NoError(t, err)

	_, err = svc.RecordPayment(context.Background(), "inv-1", domain.PaymentInput{Amount: 0, Date: "2026-03-14"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.RecordPayment(context.Background(), "nope", domain.PaymentInput{Amount: 10, Date: "2026-03-14"})
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestInvoiceService_AllowOverpayment(t *testing.T) {
	svc, store, _ := newInvoiceService(t, ledger.AllowOverpayment)
	store.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, inv domain.Invoice) (domain.Invoice, error) {
			inv.ID = "inv-1"
			return inv, nil
		})
	store.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(echoInvoice)

	_, err := svc.Create(context.Background(), domain.CreateInvoiceInput{Client: "Acme", Amount: 1000})
	require.NoError(t, err)

	inv, err := svc.RecordPayment(context.Background(), "inv-1", domain.PaymentInput{Amount: 1500, Date: "2026-03-14"})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, inv.Status)
	assert.Equal(t, int64(-500), ledger.Balance(inv.Amount, inv.Paid))
	assert.Equal(t, int64(500), ledger.Overpaid(inv.Amount, inv.Paid))
}

func TestInvoiceService_Update_AmountBelowPaid(t *testing.T) {
	svc, store, _ := newInvoiceService(t, ledger.RejectOverpayment)
	store.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, inv domain.Invoice) (domain.Invoice, error) {
			inv.ID = "inv-1"
			return inv, nil
		})
	store.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(echoInvoice).Once()

	_, err := svc.Create(context.Background(), domain.CreateInvoiceInput{Client: "Acme", Amount: 1000})
	require.NoError(t, err)
	_, err = svc.RecordPayment(context.Background(), "inv-1", domain.PaymentInput{Amount: 800, Date: "2026-03-14"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "inv-1", domain.UpdateInvoiceInput{Client: "Acme", Amount: 500})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvoiceService_Replace_PaymentsAreAppendOnly(t *testing.T) {
	svc, store, _ := newInvoiceService(t, ledger.RejectOverpayment)
	store.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, inv domain.Invoice) (domain.Invoice, error) {
			inv.ID = "inv-1"
			return inv, nil
		})
	store.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(echoInvoice)

	_, err := svc.Create(context.Background(), domain.CreateInvoiceInput{Client: "Acme", Amount: 1000})
	require.NoError(t, err)
	paid, err := svc.RecordPayment(context.Background(), "inv-1", domain.PaymentInput{Amount: 400, Date: "2026-03-14"})
	require.NoError(t, err)

	dropped := paid.Clone()
	dropped.Payments = nil
	_, err = svc.Replace(context.Background(), dropped)
	assert.ErrorIs(t, err, domain.ErrValidation)

	appended := paid.Clone()
	appended.Payments = append(appended.Payments, domain.PaymentRecord{ID: "p-new", Amount: 100, Date: "2026-03-15"})
	got, err := svc.Replace(context.Background(), appended)
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.Paid)
	assert.Equal(t, domain.PaymentPartial, got.Status)
	require.Len(t, got.Payments, 2)
	assert.NotEqual(t, "p-new", got.Payments[1].ID)
	assert.False(t, got.Payments[1].RecordedAt.IsZero())
}

func TestInvoiceService_Replace_RejectsTamperedPayments(t *testing.T) {
	svc, store, _ := newInvoiceService(t, ledger.RejectOverpayment)
	store.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, inv domain.Invoice) (domain.Invoice, error) {
			inv.ID = "inv-1"
			return inv, nil
		})
	store.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(echoInvoice).Once()

	_, err := svc.Create(context.Background(), domain.CreateInvoiceInput{Client: "Acme", Amount: 1000})
	require.NoError(t, err)
	paid, err := svc.RecordPayment(context.Background(), "inv-1", domain.PaymentInput{Amount: 400, Date: "2026-03-14", Method: "cash"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*domain.Invoice)
	}{
		{"edited method", func(inv *domain.Invoice) { inv.Payments[0].Method = "card" }},
		{"edited date", func(inv *domain.Invoice) { inv.Payments[0].Date = "2026-01-01" }},
		{"edited notes", func(inv *domain.Invoice) { inv.Payments[0].Notes = "moved" }},
		{"duplicate id", func(inv *domain.Invoice) { inv.Payments = append(inv.Payments, inv.Payments[0]) }},
		{"new payment with bad date", func(inv *domain.Invoice) {
			inv.Payments = append(inv.Payments, domain.PaymentRecord{Amount: 100, Date: "14/03/2026"})
		}},
		{"new payment without amount", func(inv *domain.Invoice) {
			inv.Payments = append(inv.Payments, domain.PaymentRecord{Date: "2026-03-15"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := paid.Clone()
			tt.mutate(&next)

			_, err := svc.Replace(context.Background(), next)

			assert.ErrorIs(t, err, domain.ErrValidation)
			current, err := svc.Get(context.Background(), "inv-1")
			require.NoError(t, err)
			assert.Equal(t, paid.Payments, current.Payments)
			assert.Equal(t, int64(400), current.Paid)
		})
	}
}
