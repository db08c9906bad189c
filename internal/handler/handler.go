package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/handler/dto"
	"github.com/stpnv0/StudioDesk/internal/ledger"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// SessionHeader carries the browser session that owns form drafts.
const SessionHeader = "X-Session-ID"

type EventSvc interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id string) (domain.Event, error)
	Create(ctx context.Context, input domain.CreateEventInput) (domain.Event, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) (domain.Event, error)
	Replace(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id string) error
	AddService(ctx context.Context, eventID string, input domain.ServiceInput) (domain.Event, error)
	SetServiceStatus(ctx context.Context, eventID, serviceID string, status domain.Status) (domain.Event, error)
}

type InvoiceSvc interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	Get(ctx context.Context, id string) (domain.Invoice, error)
	Create(ctx context.Context, input domain.CreateInvoiceInput) (domain.Invoice, error)
	Update(ctx context.Context, id string, input domain.UpdateInvoiceInput) (domain.Invoice, error)
	Replace(ctx context.Context, inv domain.Invoice) (domain.Invoice, error)
	Delete(ctx context.Context, id string) error
	RecordPayment(ctx context.Context, id string, input domain.PaymentInput) (domain.Invoice, error)
}

type TeamSvc interface {
	List(ctx context.Context) ([]domain.TeamLedger, error)
	Get(ctx context.Context, memberID string) (domain.TeamLedger, error)
	Summary(ctx context.Context, memberID string) (ledger.Summary, error)
	Create(ctx context.Context, l domain.TeamLedger) (domain.TeamLedger, error)
	Replace(ctx context.Context, l domain.TeamLedger) (domain.TeamLedger, error)
	Delete(ctx context.Context, memberID string) error
	RecordPayout(ctx context.Context, memberID string, input domain.TeamPaymentInput) (domain.TeamLedger, error)
	DeletePayout(ctx context.Context, memberID, paymentID string) (domain.TeamLedger, error)
}

type DraftCache interface {
	Save(ctx context.Context, key domain.DraftKey, payload json.RawMessage) error
	Load(ctx context.Context, key domain.DraftKey) (json.RawMessage, bool, error)
	Clear(ctx context.Context, key domain.DraftKey) error
	EndSession(ctx context.Context, session string) error
}

// ReportSource hands out failure messages waiting to be shown in the UI.
type ReportSource interface {
	Drain() []string
}

type Handler struct {
	eventService   EventSvc
	invoiceService InvoiceSvc
	teamService    TeamSvc
	drafts         DraftCache
	reports        ReportSource
	logger         logger.Logger
}

func NewHandler(
	eventService EventSvc,
	invoiceService InvoiceSvc,
	teamService TeamSvc,
	drafts DraftCache,
	reports ReportSource,
	log logger.Logger,
) *Handler {
	return &Handler{
		eventService:   eventService,
		invoiceService: invoiceService,
		teamService:    teamService,
		drafts:         drafts,
		reports:        reports,
		logger:         log,
	}
}

func (h *Handler) ListReports(c *ginext.Context) {
	messages := h.reports.Drain()
	if messages == nil {
		messages = []string{}
	}
	c.JSON(http.StatusOK, dto.ReportsResponse{Messages: messages})
}

// clearDraft drops the draft a successful submit came from. A failure here
// never fails the request.
func (h *Handler) clearDraft(c *ginext.Context, form domain.FormKind, entityID string) {
	session := c.GetHeader(SessionHeader)
	if session == "" {
		return
	}

	key := domain.DraftKey{Session: session, Form: form, EntityID: entityID}
	if err := h.drafts.Clear(c.Request.Context(), key); err != nil {
		h.logger.Warn("failed to clear draft",
			logger.String("key", key.String()),
			logger.String("error", err.Error()),
		)
	}
}

func (h *Handler) bindJSON(c *ginext.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrLedgerNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.UserMessage(err)})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNetwork),
		errors.Is(err, domain.ErrServerRejection):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: domain.UserMessage(err)})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
