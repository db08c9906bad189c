package dto

import (
	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/ledger"
)

type EventResponse struct {
	domain.Event
}

// InvoiceResponse adds the figures a client should not compute itself.
type InvoiceResponse struct {
	domain.Invoice
	Balance  int64 `json:"balance"`
	Overpaid int64 `json:"overpaid,omitempty"`
}

type TeamLedgerResponse struct {
	domain.TeamLedger
	Summary ledger.Summary `json:"summary"`
}

type ReportsResponse struct {
	Messages []string `json:"messages"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e domain.Event) EventResponse {
	return EventResponse{Event: e}
}

func ToInvoiceResponse(inv domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		Invoice:  inv,
		Balance:  ledger.Balance(inv.Amount, inv.Paid),
		Overpaid: ledger.Overpaid(inv.Amount, inv.Paid),
	}
}

func ToTeamLedgerResponse(l domain.TeamLedger) TeamLedgerResponse {
	return TeamLedgerResponse{
		TeamLedger: l,
		Summary:    ledger.Summarize(l.Payments),
	}
}
