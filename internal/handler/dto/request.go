package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/ledger"
)

// Amount accepts either an integer in minor units or a decimal string such as
// "40.50".
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		minor, err := ledger.ParseAmount(s)
		if err != nil {
			return err
		}
		*a = Amount(minor)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be an integer in minor units or a decimal string")
	}
	*a = Amount(n)
	return nil
}

type ServiceRequest struct {
	Name     string        `json:"name" binding:"required"`
	Date     string        `json:"date" binding:"required"`
	Time     string        `json:"time"`
	Location string        `json:"location"`
	Status   domain.Status `json:"status"`
}

func (r ServiceRequest) Input() domain.ServiceInput {
	return domain.ServiceInput{
		Name:     r.Name,
		Date:     r.Date,
		Time:     r.Time,
		Location: r.Location,
		Status:   r.Status,
	}
}

// CreateEventRequest matches the JSON of a full domain.Event, so the remote
// store can post records to the same route.
type CreateEventRequest struct {
	Name     string             `json:"name" binding:"required"`
	Client   string             `json:"client"`
	Services []ServiceRequest   `json:"services" binding:"dive"`
	Team     []domain.MemberRef `json:"team"`
}

func (r CreateEventRequest) Input() domain.CreateEventInput {
	in := domain.CreateEventInput{Name: r.Name, Client: r.Client, Team: r.Team}
	for _, s := range r.Services {
		in.Services = append(in.Services, s.Input())
	}
	return in
}

type UpdateEventRequest struct {
	Name   string             `json:"name" binding:"required"`
	Client string             `json:"client"`
	Team   []domain.MemberRef `json:"team"`
}

type ServiceStatusRequest struct {
	Status domain.Status `json:"status" binding:"required"`
}

type CreateInvoiceRequest struct {
	Client  string `json:"client" binding:"required"`
	EventID string `json:"event_id"`
	Amount  Amount `json:"amount"`
	Notes   string `json:"notes"`
}

type UpdateInvoiceRequest struct {
	Client string `json:"client" binding:"required"`
	Amount Amount `json:"amount"`
	Notes  string `json:"notes"`
}

type PaymentRequest struct {
	Amount    Amount `json:"amount" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Method    string `json:"method"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

func (r PaymentRequest) Input() domain.PaymentInput {
	return domain.PaymentInput{
		Amount:    int64(r.Amount),
		Date:      r.Date,
		Method:    r.Method,
		Reference: r.Reference,
		Notes:     r.Notes,
	}
}

type PayoutRequest struct {
	MemberName string               `json:"member_name"`
	EventRef   string               `json:"event_ref"`
	Amount     Amount               `json:"amount" binding:"required"`
	Status     domain.PaymentStatus `json:"status"`
	Date       string               `json:"date" binding:"required"`
	Method     string               `json:"method"`
	Reference  string               `json:"reference"`
	Notes      string               `json:"notes"`
}

func (r PayoutRequest) Input() domain.TeamPaymentInput {
	status := r.Status
	if status == "" {
		status = domain.PaymentPending
	}
	return domain.TeamPaymentInput{
		MemberName: r.MemberName,
		EventRef:   r.EventRef,
		Amount:     int64(r.Amount),
		Status:     status,
		Date:       r.Date,
		Method:     r.Method,
		Reference:  r.Reference,
		Notes:      r.Notes,
	}
}
