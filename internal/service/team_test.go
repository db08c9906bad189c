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

func newTeamService(t *testing.T, seed ...domain.TeamLedger) (*TeamService, *mocks.MockTeamStore, *mocks.MockReporter) {
	t.Helper()
	store := mocks.NewMockTeamStore(t)
	reporter := mocks.NewMockReporter(t)
	svc := NewTeamService(store, ledger.New(ledger.RejectOverpayment), reporter, newTestLogger(t))

	store.EXPECT().List(mock.Anything).Return(seed, nil).Once()
	mustRefresh(t, svc.Refresh)
	return svc, store, reporter
}

func payout(id string, amount int64, status domain.PaymentStatus) domain.TeamPayment {
	return domain.TeamPayment{
		PaymentRecord: domain.PaymentRecord{ID: id, Amount: amount, Date: "2026-03-01"},
		MemberID:      "m-1",
		Status:        status,
	}
}

func TestTeamService_RecordPayout_OpensLedger(t *testing.T) {
	svc, store, _ := newTeamService(t)

	store.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, l domain.TeamLedger) (domain.TeamLedger, error) {
			l.Version = 1
			return l, nil
		})

	got, err := svc.RecordPayout(context.Background(), "m-1", domain.TeamPaymentInput{
		MemberName: "Ann", Amount: 2500, Status: domain.PaymentPending, Date: "2026-03-14",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ann", got.MemberName)
	require.Len(t, got.Payments, 1)
	assert.Equal(t, "m-1", got.Payments[0].MemberID)

	summary, err := svc.Summary(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, ledger.Summary{Total: 2500, PendingSum: 2500}, summary)
}

func TestTeamService_RecordPayout_SummaryReflectsDelta(t *testing.T) {
	seed := domain.TeamLedger{
		MemberID: "m-1", MemberName: "Ann", Version: 1,
		Payments: []domain.TeamPayment{payout("p1", 1000, domain.PaymentPaid), payout("p2", 500, domain.PaymentPending)},
	}
	svc, store, _ := newTeamService(t, seed)
	store.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(echoLedger)

	before, err := svc.Summary(context.Background(), "m-1")
	require.NoError(t, err)

	_, err = svc.RecordPayout(context.Background(), "m-1", domain.TeamPaymentInput{
		Amount: 700, Status: domain.PaymentPaid, Date: "2026-03-14",
	})
	require.NoError(t, err)

	after, err := svc.Summary(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, before.Total+700, after.Total)
	assert.Equal(t, before.PaidSum+700, after.PaidSum)
	assert.Equal(t, before.PendingSum, after.PendingSum)
	assert.Equal(t, int64(500), svc.PendingTotal(context.Background()))
}

func TestTeamService_DeletePayout(t *testing.T) {
	seed := domain.TeamLedger{
		MemberID: "m-1", Version: 1,
		Payments: []domain.TeamPayment{payout("p1", 1000, domain.PaymentPaid), payout("p2", 500, domain.PaymentPending)},
	}
	svc, store, _ := newTeamService(t, seed)
	store.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(echoLedger)

	got, err := svc.DeletePayout(context.Background(), "m-1", "p1")
	require.NoError(t, err)
	require.Len(t, got.Payments, 1)
	assert.Equal(t, "p2", got.Payments[0].ID)

	_, err = svc.DeletePayout(context.Background(), "m-1", "p1")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestTeamService_DeletePayout_RollbackOnNetworkError(t *testing.T) {
	seed := domain.TeamLedger{
		MemberID: "m-1", Version: 1,
		Payments: []domain.TeamPayment{payout("p1", 1000, domain.PaymentPaid)},
	}
	svc, store, reporter := newTeamService(t, seed)
	store.EXPECT().Update(mock.Anything, mock.Anything).Return(domain.TeamLedger{}, domain.ErrNetwork)
	reporter.EXPECT().Report(mock.Anything, mock.AnythingOfType("string")).Return()

	_, err := svc.DeletePayout(context.Background(), "m-1", "p1")

	assert.ErrorIs(t, err, domain.ErrNetwork)
	got, err := svc.Get(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Len(t, got.Payments, 1)
}

func TestTeamService_RecordPayout_Invalid(t *testing.T) {
	svc, _, _ := newTeamService(t)

	_, err := svc.RecordPayout(context.Background(), "m-1", domain.TeamPaymentInput{Amount: 10, Status: "owed", Date: "2026-03-14"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.RecordPayout(context.Background(), "", domain.TeamPaymentInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
