package domain

import "time"

// PaymentStatus is the settlement state of an invoice or of a team payout record.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// PaymentRecord is one entry of an append-only payment list. Amount is in
// minor units.
type PaymentRecord struct {
	ID         string    `json:"id"`
	Amount     int64     `json:"amount"`
	Date       string    `json:"date"`
	Method     string    `json:"method,omitempty"`
	Reference  string    `json:"reference,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

type PaymentInput struct {
	Amount    int64  `validate:"gt=0"`
	Date      string `validate:"required,datetime=2006-01-02"`
	Method    string `validate:"max=50"`
	Reference string `validate:"max=100"`
	Notes     string `validate:"max=1000"`
}
