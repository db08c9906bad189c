package domain

import "time"

// Invoice is a billable total with the payments received against it. Paid and
// Status are recomputed from Payments and are never stored.
type Invoice struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"`
	Client    string          `json:"client"`
	EventID   string          `json:"event_id,omitempty"`
	Amount    int64           `json:"amount"`
	Paid      int64           `json:"paid"`
	Payments  []PaymentRecord `json:"payments"`
	Status    PaymentStatus   `json:"status"`
	Notes     string          `json:"notes,omitempty"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
}

func (i Invoice) Key() string { return i.ID }

func (i Invoice) Clone() Invoice {
	out := i
	if i.Payments != nil {
		out.Payments = append([]PaymentRecord(nil), i.Payments...)
	}
	return out
}

type CreateInvoiceInput struct {
	Client  string `validate:"required,max=200"`
	EventID string `validate:"omitempty,uuid"`
	Amount  int64  `validate:"gte=0"`
	Notes   string `validate:"max=1000"`
}

type UpdateInvoiceInput struct {
	Client string `validate:"required,max=200"`
	Amount int64  `validate:"gte=0"`
	Notes  string `validate:"max=1000"`
}
