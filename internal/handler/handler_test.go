package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/handler/dto"
	hmocks "github.com/stpnv0/StudioDesk/internal/handler/mocks"
	"github.com/stpnv0/StudioDesk/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type testDeps struct {
	events   *hmocks.MockEventSvc
	invoices *hmocks.MockInvoiceSvc
	team     *hmocks.MockTeamSvc
	drafts   *hmocks.MockDraftCache
	reports  *hmocks.MockReportSource
}

func setupRouter(t *testing.T) (testDeps, http.Handler) {
	t.Helper()
	deps := testDeps{
		events:   hmocks.NewMockEventSvc(t),
		invoices: hmocks.NewMockInvoiceSvc(t),
		team:     hmocks.NewMockTeamSvc(t),
		drafts:   hmocks.NewMockDraftCache(t),
		reports:  hmocks.NewMockReportSource(t),
	}

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	h := NewHandler(deps.events, deps.invoices, deps.team, deps.drafts, deps.reports, log)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.ReplaceEvent)
		api.PATCH("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/events/:id/services", h.AddService)
		api.PATCH("/events/:id/services/:serviceId/status", h.SetServiceStatus)

		api.POST("/invoices", h.CreateInvoice)
		api.GET("/invoices", h.ListInvoices)
		api.GET("/invoices/:id", h.GetInvoice)
		api.PUT("/invoices/:id", h.ReplaceInvoice)
		api.POST("/invoices/:id/payments", h.RecordPayment)

		api.GET("/team", h.ListTeam)
		api.GET("/team/:memberId/summary", h.GetLedgerSummary)
		api.POST("/team/:memberId/payments", h.RecordPayout)
		api.DELETE("/team/:memberId/payments/:paymentId", h.DeletePayout)

		api.GET("/drafts/:form/:id", h.GetDraft)
		api.PUT("/drafts/:form/:id", h.SaveDraft)
		api.DELETE("/drafts/:form/:id", h.ClearDraft)
		api.DELETE("/drafts", h.EndSession)

		api.GET("/reports", h.ListReports)
	}

	return deps, r
}

func do(r http.Handler, method, path string, body []byte, headers ...string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Create(mock.Anything, mock.AnythingOfType("domain.CreateEventInput")).
		Run(func(_ context.Context, input domain.CreateEventInput) {
			assert.Equal(t, "Smith wedding", input.Name)
			require.Len(t, input.Services, 1)
			assert.Equal(t, "2026-06-01", input.Services[0].Date)
		}).
		Return(domain.Event{ID: "e1", Name: "Smith wedding", Status: domain.StatusScheduled, Version: 1}, nil)

	body := []byte(`{"name":"Smith wedding","services":[{"name":"Ceremony","date":"2026-06-01"}]}`)
	w := do(r, http.MethodPost, "/api/events", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "e1", resp.ID)
	assert.Equal(t, domain.StatusScheduled, resp.Status)
}

func TestHandler_CreateEvent_ClearsDraft(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.Event{ID: "e1", Name: "Gala"}, nil)
	deps.drafts.EXPECT().Clear(mock.Anything, domain.DraftKey{Session: "s-1", Form: domain.FormEvent, EntityID: domain.NewEntity}).
		Return(nil)

	w := do(r, http.MethodPost, "/api/events", []byte(`{"name":"Gala"}`), SessionHeader, "s-1")

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/events", []byte(`{"name":""}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_RemoteFailure(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domain.Event{}, &domain.RejectionError{Status: 422, Message: "date is in the past"})

	w := do(r, http.MethodPost, "/api/events", []byte(`{"name":"Gala"}`), SessionHeader, "s-1")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "date is in the past", resp.Error)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Get(mock.Anything, "missing").Return(domain.Event{}, domain.ErrEventNotFound)

	w := do(r, http.MethodGet, "/api/events/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Empty(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().List(mock.Anything).Return(nil, nil)

	w := do(r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ReplaceEvent_UsesPathID(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Replace(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.ID == "e1" && e.Version == 3
	})).Return(domain.Event{ID: "e1", Version: 4}, nil)

	w := do(r, http.MethodPut, "/api/events/e1", []byte(`{"id":"other","name":"Gala","version":3}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ReplaceEvent_Conflict(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Replace(mock.Anything, mock.Anything).Return(domain.Event{}, domain.ErrConflict)

	w := do(r, http.MethodPut, "/api/events/e1", []byte(`{"name":"Gala","version":1}`))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateEvent(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Update(mock.Anything, "e1", domain.UpdateEventInput{Name: "Gala", Client: "Acme"}).
		Return(domain.Event{ID: "e1", Name: "Gala", Client: "Acme"}, nil)

	w := do(r, http.MethodPatch, "/api/events/e1", []byte(`{"name":"Gala","client":"Acme"}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteEvent(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	w := do(r, http.MethodDelete, "/api/events/e1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteEvent_NetworkError(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().Delete(mock.Anything, "e1").Return(domain.ErrNetwork)

	w := do(r, http.MethodDelete, "/api/events/e1", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_AddService_ClearsServiceDraft(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().AddService(mock.Anything, "e1", domain.ServiceInput{Name: "Brunch", Date: "2026-06-02"}).
		Return(domain.Event{ID: "e1"}, nil)
	deps.drafts.EXPECT().Clear(mock.Anything, domain.DraftKey{Session: "s-1", Form: domain.FormService, EntityID: "e1"}).
		Return(nil)

	w := do(r, http.MethodPost, "/api/events/e1/services", []byte(`{"name":"Brunch","date":"2026-06-02"}`), SessionHeader, "s-1")

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_SetServiceStatus(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().SetServiceStatus(mock.Anything, "e1", "s2", domain.StatusCancelled).
		Return(domain.Event{ID: "e1", Status: domain.StatusCompleted}, nil)

	w := do(r, http.MethodPatch, "/api/events/e1/services/s2/status", []byte(`{"status":"cancelled"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusCompleted, resp.Status)
}

func TestHandler_SetServiceStatus_Validation(t *testing.T) {
	deps, r := setupRouter(t)

	deps.events.EXPECT().SetServiceStatus(mock.Anything, "e1", "s2", domain.Status("done")).
		Return(domain.Event{}, domain.ErrValidation)

	w := do(r, http.MethodPatch, "/api/events/e1/services/s2/status", []byte(`{"status":"done"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Invoices ---

func TestHandler_CreateInvoice_DecimalAmount(t *testing.T) {
	deps, r := setupRouter(t)

	deps.invoices.EXPECT().Create(mock.Anything, domain.CreateInvoiceInput{Client: "Acme", Amount: 5000}).
		Return(domain.Invoice{ID: "inv-1", Client: "Acme", Amount: 5000, Status: domain.PaymentPending}, nil)

	w := do(r, http.MethodPost, "/api/invoices", []byte(`{"client":"Acme","amount":"50.00"}`))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5000), resp.Balance)
	assert.Equal(t, int64(5000), resp.Amount)
}

func TestHandler_CreateInvoice_BadAmount(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/invoices", []byte(`{"client":"Acme","amount":"12.345"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RecordPayment(t *testing.T) {
	deps, r := setupRouter(t)

	deps.invoices.EXPECT().RecordPayment(mock.Anything, "inv-1", domain.PaymentInput{Amount: 2000, Date: "2026-03-14"}).
		Return(domain.Invoice{ID: "inv-1", Amount: 5000, Paid: 2000, Status: domain.PaymentPartial}, nil)
	deps.drafts.EXPECT().Clear(mock.Anything, domain.DraftKey{Session: "s-1", Form: domain.FormPayment, EntityID: "inv-1"}).
		Return(domain.ErrValidation)

	w := do(r, http.MethodPost, "/api/invoices/inv-1/payments", []byte(`{"amount":2000,"date":"2026-03-14"}`), SessionHeader, "s-1")

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.PaymentPartial, resp.Status)
	assert.Equal(t, int64(3000), resp.Balance)
	assert.Zero(t, resp.Overpaid)
}

func TestHandler_RecordPayment_Overpayment(t *testing.T) {
	deps, r := setupRouter(t)

	deps.invoices.EXPECT().RecordPayment(mock.Anything, "inv-1", mock.Anything).
		Return(domain.Invoice{}, domain.ErrValidation)

	w := do(r, http.MethodPost, "/api/invoices/inv-1/payments", []byte(`{"amount":"99.99","date":"2026-03-14"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListInvoices_OverpaidBalance(t *testing.T) {
	deps, r := setupRouter(t)

	deps.invoices.EXPECT().List(mock.Anything).
		Return([]domain.Invoice{{ID: "inv-1", Amount: 1000, Paid: 1500, Status: domain.PaymentPaid}}, nil)

	w := do(r, http.MethodGet, "/api/invoices", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(-500), resp[0].Balance)
	assert.Equal(t, int64(500), resp[0].Overpaid)
}

// --- Team ---

func TestHandler_RecordPayout_DefaultsToPending(t *testing.T) {
	deps, r := setupRouter(t)

	deps.team.EXPECT().RecordPayout(mock.Anything, "m-1", mock.MatchedBy(func(in domain.TeamPaymentInput) bool {
		return in.Status == domain.PaymentPending && in.Amount == 2550
	})).Return(domain.TeamLedger{
		MemberID: "m-1",
		Payments: []domain.TeamPayment{{PaymentRecord: domain.PaymentRecord{ID: "p1", Amount: 2550}, Status: domain.PaymentPending}},
	}, nil)

	w := do(r, http.MethodPost, "/api/team/m-1/payments", []byte(`{"amount":"25.50","date":"2026-03-14"}`))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.TeamLedgerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ledger.Summary{Total: 2550, PendingSum: 2550}, resp.Summary)
}

func TestHandler_DeletePayout_NotFound(t *testing.T) {
	deps, r := setupRouter(t)

	deps.team.EXPECT().DeletePayout(mock.Anything, "m-1", "p9").Return(domain.TeamLedger{}, domain.ErrPaymentNotFound)

	w := do(r, http.MethodDelete, "/api/team/m-1/payments/p9", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetLedgerSummary(t *testing.T) {
	deps, r := setupRouter(t)

	deps.team.EXPECT().Summary(mock.Anything, "m-1").Return(ledger.Summary{Total: 300, PaidSum: 100, PendingSum: 200}, nil)

	w := do(r, http.MethodGet, "/api/team/m-1/summary", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":300,"paid_sum":100,"pending_sum":200}`, w.Body.String())
}

// --- Drafts ---

func TestHandler_Drafts_RoundTrip(t *testing.T) {
	deps, r := setupRouter(t)
	key := domain.DraftKey{Session: "s-1", Form: domain.FormInvoice, EntityID: "new"}
	payload := []byte(`{"client":"Ac"}`)

	deps.drafts.EXPECT().Save(mock.Anything, key, json.RawMessage(payload)).Return(nil)
	deps.drafts.EXPECT().Load(mock.Anything, key).Return(json.RawMessage(payload), true, nil)

	w := do(r, http.MethodPut, "/api/drafts/invoice/new", payload, SessionHeader, "s-1")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/api/drafts/invoice/new", nil, SessionHeader, "s-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(payload), w.Body.String())
}

func TestHandler_GetDraft_Missing(t *testing.T) {
	deps, r := setupRouter(t)

	deps.drafts.EXPECT().Load(mock.Anything, mock.Anything).Return(nil, false, nil)

	w := do(r, http.MethodGet, "/api/drafts/event/new", nil, SessionHeader, "s-1")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Drafts_RequireSession(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/drafts/event/new", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/api/drafts", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_EndSession(t *testing.T) {
	deps, r := setupRouter(t)

	deps.drafts.EXPECT().EndSession(mock.Anything, "s-1").Return(nil)

	w := do(r, http.MethodDelete, "/api/drafts", nil, SessionHeader, "s-1")

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Reports ---

func TestHandler_ListReports(t *testing.T) {
	deps, r := setupRouter(t)

	deps.reports.EXPECT().Drain().Return([]string{"could not reach the server, changes were reverted"}).Once()
	deps.reports.EXPECT().Drain().Return(nil).Once()

	w := do(r, http.MethodGet, "/api/reports", nil)
	assert.JSONEq(t, `{"messages":["could not reach the server, changes were reverted"]}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/reports", nil)
	assert.JSONEq(t, `{"messages":[]}`, w.Body.String())
}
