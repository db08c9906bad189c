package domain

// TeamPayment is a payout record owed to a team member for an event.
type TeamPayment struct {
	PaymentRecord
	MemberID string        `json:"member_id"`
	EventRef string        `json:"event_ref,omitempty"`
	Status   PaymentStatus `json:"status"`
}

// TeamLedger holds the payout history of one member. Unlike invoices, single
// records may be deleted.
type TeamLedger struct {
	MemberID   string        `json:"member_id"`
	MemberName string        `json:"member_name"`
	Payments   []TeamPayment `json:"payments"`
	Version    int64         `json:"version"`
}

func (l TeamLedger) Key() string { return l.MemberID }

func (l TeamLedger) Clone() TeamLedger {
	out := l
	if l.Payments != nil {
		out.Payments = append([]TeamPayment(nil), l.Payments...)
	}
	return out
}

type TeamPaymentInput struct {
	MemberName string        `validate:"max=200"`
	EventRef   string        `validate:"max=100"`
	Amount     int64         `validate:"gt=0"`
	Status     PaymentStatus `validate:"required,oneof=pending partial paid"`
	Date       string        `validate:"required,datetime=2006-01-02"`
	Method     string        `validate:"max=50"`
	Reference  string        `validate:"max=100"`
	Notes      string        `validate:"max=1000"`
}
