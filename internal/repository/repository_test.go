package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &dbpg.DB{Master: db}, mock
}

func TestEventRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)
	repo.now = func() time.Time { return fixedNow }

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO events").
		WithArgs(sqlmock.AnyArg(), "Smith wedding", "Smith", int64(1), fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO event_services").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 0, "Ceremony", "2026-06-01", "14:00", "Chapel", domain.StatusScheduled).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO event_team").
		WithArgs(sqlmock.AnyArg(), "m-1", "photographer", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Create(context.Background(), domain.Event{
		ID:       "local-1",
		Name:     "Smith wedding",
		Client:   "Smith",
		Services: []domain.Service{{ID: "local-s1", Name: "Ceremony", Date: "2026-06-01", Time: "14:00", Location: "Chapel"}},
		Team:     []domain.MemberRef{{MemberID: "m-1", Role: "photographer"}},
	})

	require.NoError(t, err)
	assert.NotEqual(t, "local-1", got.ID)
	assert.NotEqual(t, "local-s1", got.Services[0].ID)
	assert.Equal(t, domain.StatusScheduled, got.Services[0].Status)
	assert.Equal(t, int64(1), got.Version)
	assert.Equal(t, fixedNow, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update_VersionMismatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE events").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("0b7e6b8e-1c7e-4a43-9e4b-1d2f3a4b5c6d").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), domain.Event{ID: "0b7e6b8e-1c7e-4a43-9e4b-1d2f3a4b5c6d", Name: "x", Version: 3})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE events").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), domain.Event{ID: "0b7e6b8e-1c7e-4a43-9e4b-1d2f3a4b5c6d", Name: "x", Version: 1})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update_ReplacesChildren(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)
	repo.now = func() time.Time { return fixedNow }
	id := "0b7e6b8e-1c7e-4a43-9e4b-1d2f3a4b5c6d"
	serviceID := "1c8f7c9f-2d8f-4b54-8f5c-2e3f4a5b6c7d"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE events").
		WithArgs(id, int64(2), "Renamed", "Client", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM event_services").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM event_team").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO event_services").
		WithArgs(serviceID, id, 0, "Reception", "2026-06-01", "", "", domain.StatusCompleted).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Update(context.Background(), domain.Event{
		ID: id, Name: "Renamed", Client: "Client", Version: 2,
		Services: []domain.Service{{ID: serviceID, Name: "Reception", Date: "2026-06-01", Status: domain.StatusCompleted}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Version)
	assert.Equal(t, serviceID, got.Services[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectExec("DELETE FROM events").WithArgs("e1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "e1"))

	mock.ExpectExec("DELETE FROM events").WithArgs("e2").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "e2"), domain.ErrEventNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List_DerivesStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery("SELECT id, name, client, version, created_at").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "client", "version", "created_at"}).
			AddRow("e1", "Wedding", "Smith", int64(2), fixedNow).
			AddRow("e2", "Gala", "Acme", int64(1), fixedNow))
	mock.ExpectQuery("FROM event_services").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name", "date", "time", "location", "status"}).
			AddRow("s1", "e1", "Ceremony", "2026-06-01", "", "", "completed").
			AddRow("s2", "e1", "Party", "2026-06-01", "", "", "cancelled").
			AddRow("s3", "e2", "Dinner", "2026-07-01", "19:00", "Hall", "cancelled"))
	mock.ExpectQuery("FROM event_team").
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "member_id", "role"}).
			AddRow("e1", "m-1", "lead"))

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.StatusCompleted, got[0].Status)
	assert.Len(t, got[0].Services, 2)
	assert.Equal(t, []domain.MemberRef{{MemberID: "m-1", Role: "lead"}}, got[0].Team)
	assert.Equal(t, domain.StatusCancelled, got[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_Create_NumberCollision(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)
	repo.now = func() time.Time { return fixedNow }
	repo.number = func(time.Time) string { return "INV-20260314-AAAAAA" }

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO invoices").
		WithArgs(sqlmock.AnyArg(), "INV-20260314-AAAAAA", "Acme", nil, int64(5000), "", int64(1), fixedNow).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), domain.Invoice{ID: "local-1", Client: "Acme", Amount: 5000})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)
	repo.now = func() time.Time { return fixedNow }

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO invoices").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Create(context.Background(), domain.Invoice{ID: "local-1", Client: "Acme", Amount: 5000})

	require.NoError(t, err)
	assert.Regexp(t, `^INV-20260314-[0-9A-F]{6}$`, got.Number)
	assert.Equal(t, domain.PaymentPending, got.Status)
	assert.Equal(t, int64(0), got.Paid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_Update_AppendsPayments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)
	repo.now = func() time.Time { return fixedNow }
	id := "0b7e6b8e-1c7e-4a43-9e4b-1d2f3a4b5c6d"
	paymentID := "2d9a8b7c-3e9a-4c65-9a6d-3f4a5b6c7d8e"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE invoices").
		WithArgs(id, int64(1), "Acme", nil, int64(5000), "", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO invoice_payments").
		WithArgs(paymentID, id, int64(2000), "2026-03-14", "cash", "", "", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, number, client, event_id, amount, notes, version, created_at FROM invoices").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "client", "event_id", "amount", "notes", "version", "created_at"}).
			AddRow(id, "INV-1", "Acme", nil, int64(5000), "", int64(2), fixedNow))
	mock.ExpectQuery("FROM invoice_payments").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "date", "method", "reference", "notes", "recorded_at"}).
			AddRow(paymentID, int64(2000), "2026-03-14", "cash", "", "", fixedNow))
	mock.ExpectCommit()

	got, err := repo.Update(context.Background(), domain.Invoice{
		ID: id, Client: "Acme", Amount: 5000, Version: 1,
		Payments: []domain.PaymentRecord{{ID: paymentID, Amount: 2000, Date: "2026-03-14", Method: "cash", RecordedAt: fixedNow}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, int64(2000), got.Paid)
	assert.Equal(t, domain.PaymentPartial, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_List_DerivesPaid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)

	mock.ExpectQuery("FROM invoices").
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "client", "event_id", "amount", "notes", "version", "created_at"}).
			AddRow("i1", "INV-1", "Acme", "e1", int64(5000), "", int64(3), fixedNow))
	mock.ExpectQuery("FROM invoice_payments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "invoice_id", "amount", "date", "method", "reference", "notes", "recorded_at"}).
			AddRow("p1", "i1", int64(2000), "2026-03-01", "", "", "", fixedNow).
			AddRow("p2", "i1", int64(3000), "2026-03-02", "", "", "", fixedNow))

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].EventID)
	assert.Equal(t, int64(5000), got[0].Paid)
	assert.Equal(t, domain.PaymentPaid, got[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_Update_SyncsDeletions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamRepo(db)
	repo.now = func() time.Time { return fixedNow }
	paymentID := "2d9a8b7c-3e9a-4c65-9a6d-3f4a5b6c7d8e"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE team_ledgers").
		WithArgs("m-1", int64(4), "Ann", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM team_payments").
		WithArgs("m-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO team_payments").
		WithArgs(paymentID, "m-1", "e1", int64(1500), domain.PaymentPaid, "2026-03-10", "", "", "", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Update(context.Background(), domain.TeamLedger{
		MemberID: "m-1", MemberName: "Ann", Version: 4,
		Payments: []domain.TeamPayment{{
			PaymentRecord: domain.PaymentRecord{ID: paymentID, Amount: 1500, Date: "2026-03-10", RecordedAt: fixedNow},
			EventRef:      "e1",
			Status:        domain.PaymentPaid,
		}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Version)
	assert.Equal(t, "m-1", got.Payments[0].MemberID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO team_ledgers").WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), domain.TeamLedger{MemberID: "m-1"})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "ledger for this member already exists", domain.UserMessage(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamRepo(db)

	mock.ExpectQuery("FROM team_ledgers").
		WillReturnRows(sqlmock.NewRows([]string{"member_id", "member_name", "version"}).
			AddRow("m-1", "Ann", int64(1)))
	mock.ExpectQuery("FROM team_payments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "event_ref", "amount", "status", "date", "method", "reference", "notes", "recorded_at"}).
			AddRow("p1", "m-1", "e1", int64(1000), "pending", "2026-03-01", "", "", "", fixedNow))

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Payments, 1)
	assert.Equal(t, domain.PaymentPending, got[0].Payments[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
