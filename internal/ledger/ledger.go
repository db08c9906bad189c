// Package ledger holds the pure payment arithmetic shared by invoices and team
// payouts. Totals are always recomputed from the payment list.
package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StudioDesk/internal/domain"
)

// Policy decides what happens when a payment would take paid above the total.
type Policy string

const (
	RejectOverpayment Policy = "reject"
	AllowOverpayment  Policy = "allow"
)

type Result struct {
	Paid   int64
	Status domain.PaymentStatus
}

// Record adds amount to currentPaid and derives the new status.
func Record(total, currentPaid, amount int64, existing domain.PaymentStatus) (Result, error) {
	if amount <= 0 {
		return Result{}, fmt.Errorf("%w: payment amount must be positive", domain.ErrValidation)
	}

	paid, err := addMinor(currentPaid, amount)
	if err != nil {
		return Result{}, err
	}
	return Result{Paid: paid, Status: StatusFor(total, paid, existing)}, nil
}

func StatusFor(total, paid int64, existing domain.PaymentStatus) domain.PaymentStatus {
	switch {
	case paid >= total:
		return domain.PaymentPaid
	case paid > 0:
		return domain.PaymentPartial
	case existing == "":
		return domain.PaymentPending
	default:
		return existing
	}
}

// Balance is what is still owed. It is negative when an invoice was overpaid.
func Balance(total, paid int64) int64 {
	return total - paid
}

// Overpaid returns how much was received beyond the total.
func Overpaid(total, paid int64) int64 {
	if paid > total {
		return paid - total
	}
	return 0
}

type Summary struct {
	Total      int64 `json:"total"`
	PaidSum    int64 `json:"paid_sum"`
	PendingSum int64 `json:"pending_sum"`
}

// Summarize totals a payout list. Sums saturate at the int64 limit; appends
// that would get there are refused by AppendTeamPayment.
func Summarize(payments []domain.TeamPayment) Summary {
	var s Summary
	for _, p := range payments {
		s.Total = saturatingAdd(s.Total, p.Amount)
		switch p.Status {
		case domain.PaymentPaid:
			s.PaidSum = saturatingAdd(s.PaidSum, p.Amount)
		case domain.PaymentPending, domain.PaymentPartial:
			s.PendingSum = saturatingAdd(s.PendingSum, p.Amount)
		}
	}
	return s
}

// PaidTotal sums an invoice payment list, saturating at the int64 limit.
func PaidTotal(payments []domain.PaymentRecord) int64 {
	var sum int64
	for _, p := range payments {
		sum = saturatingAdd(sum, p.Amount)
	}
	return sum
}

// SumPayments is PaidTotal that fails instead of saturating.
func SumPayments(payments []domain.PaymentRecord) (int64, error) {
	var sum int64
	for _, p := range payments {
		next, err := addMinor(sum, p.Amount)
		if err != nil {
			return 0, err
		}
		sum = next
	}
	return sum, nil
}

func addMinor(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, fmt.Errorf("%w: total exceeds %s", domain.ErrValidation, FormatAmount(math.MaxInt64))
	}
	return a + b, nil
}

func saturatingAdd(a, b int64) int64 {
	sum, err := addMinor(a, b)
	if err != nil {
		return math.MaxInt64
	}
	return sum
}

// NormalizeInvoice returns a copy of inv with Paid and Status recomputed from
// its payments.
func NormalizeInvoice(inv domain.Invoice) domain.Invoice {
	out := inv.Clone()
	out.Paid = PaidTotal(out.Payments)
	out.Status = StatusFor(out.Amount, out.Paid, domain.PaymentPending)
	return out
}

// Ledger applies payments to invoices and team ledgers under a fixed
// overpayment policy.
type Ledger struct {
	policy Policy
	now    func() time.Time
	newID  func() string
}

func New(policy Policy) *Ledger {
	if policy == "" {
		policy = RejectOverpayment
	}
	return &Ledger{
		policy: policy,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

func (l *Ledger) Policy() Policy { return l.policy }

// AppendInvoicePayment returns inv with one more payment. inv itself is left
// untouched.
func (l *Ledger) AppendInvoicePayment(inv domain.Invoice, in domain.PaymentInput) (domain.Invoice, error) {
	if err := domain.Validate(in); err != nil {
		return domain.Invoice{}, err
	}

	current := NormalizeInvoice(inv)
	res, err := Record(current.Amount, current.Paid, in.Amount, current.Status)
	if err != nil {
		return domain.Invoice{}, err
	}

	if l.policy == RejectOverpayment && res.Paid > current.Amount {
		return domain.Invoice{}, fmt.Errorf("%w: payment of %d exceeds outstanding balance %d",
			domain.ErrValidation, in.Amount, Balance(current.Amount, current.Paid))
	}

	current.Payments = append(current.Payments, domain.PaymentRecord{
		ID:         l.newID(),
		Amount:     in.Amount,
		Date:       in.Date,
		Method:     in.Method,
		Reference:  in.Reference,
		Notes:      in.Notes,
		RecordedAt: l.now(),
	})
	current.Paid = res.Paid
	current.Status = res.Status

	return current, nil
}

// MergeInvoicePayments checks a full replacement payment list against the
// recorded one. Recorded payments must come back unchanged; every other entry
// is validated as a new payment and gets a fresh id and RecordedAt. The result
// keeps the recorded payments first, in their original order.
func (l *Ledger) MergeInvoicePayments(current, next []domain.PaymentRecord) ([]domain.PaymentRecord, error) {
	recorded := make(map[string]domain.PaymentRecord, len(current))
	for _, p := range current {
		recorded[p.ID] = p
	}

	seen := make(map[string]struct{}, len(next))
	var added []domain.PaymentRecord
	for _, p := range next {
		if p.ID != "" {
			if _, dup := seen[p.ID]; dup {
				return nil, fmt.Errorf("%w: payment %s is listed twice", domain.ErrValidation, p.ID)
			}
			seen[p.ID] = struct{}{}
		}

		if old, ok := recorded[p.ID]; ok && p.ID != "" {
			if !samePayment(old, p) {
				return nil, fmt.Errorf("%w: payment %s cannot be changed", domain.ErrValidation, p.ID)
			}
			continue
		}

		if err := domain.Validate(domain.PaymentInput{
			Amount:    p.Amount,
			Date:      p.Date,
			Method:    p.Method,
			Reference: p.Reference,
			Notes:     p.Notes,
		}); err != nil {
			return nil, err
		}
		p.ID = l.newID()
		p.RecordedAt = l.now()
		added = append(added, p)
	}

	for _, p := range current {
		if _, ok := seen[p.ID]; !ok {
			return nil, fmt.Errorf("%w: payment %s cannot be removed", domain.ErrValidation, p.ID)
		}
	}

	out := make([]domain.PaymentRecord, 0, len(current)+len(added))
	out = append(out, current...)
	out = append(out, added...)
	if _, err := SumPayments(out); err != nil {
		return nil, err
	}
	return out, nil
}

func samePayment(a, b domain.PaymentRecord) bool {
	return a.ID == b.ID &&
		a.Amount == b.Amount &&
		a.Date == b.Date &&
		a.Method == b.Method &&
		a.Reference == b.Reference &&
		a.Notes == b.Notes &&
		a.RecordedAt.Equal(b.RecordedAt)
}

func (l *Ledger) AppendTeamPayment(tl domain.TeamLedger, in domain.TeamPaymentInput) (domain.TeamLedger, error) {
	if err := domain.Validate(in); err != nil {
		return domain.TeamLedger{}, err
	}

	total := in.Amount
	for _, p := range tl.Payments {
		var err error
		if total, err = addMinor(total, p.Amount); err != nil {
			return domain.TeamLedger{}, err
		}
	}

	out := tl.Clone()
	if in.MemberName != "" {
		out.MemberName = in.MemberName
	}
	out.Payments = append(out.Payments, domain.TeamPayment{
		PaymentRecord: domain.PaymentRecord{
			ID:         l.newID(),
			Amount:     in.Amount,
			Date:       in.Date,
			Method:     in.Method,
			Reference:  in.Reference,
			Notes:      in.Notes,
			RecordedAt: l.now(),
		},
		MemberID: out.MemberID,
		EventRef: in.EventRef,
		Status:   in.Status,
	})

	return out, nil
}

// RemoveTeamPayment deletes one payout record.
func RemoveTeamPayment(tl domain.TeamLedger, paymentID string) (domain.TeamLedger, error) {
	out := tl.Clone()
	for i, p := range out.Payments {
		if p.ID == paymentID {
			out.Payments = append(out.Payments[:i:i], out.Payments[i+1:]...)
			return out, nil
		}
	}
	return domain.TeamLedger{}, domain.ErrPaymentNotFound
}
