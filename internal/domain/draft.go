package domain

import "strings"

// FormKind names the form a draft belongs to.
type FormKind string

const (
	FormEvent   FormKind = "event"
	FormService FormKind = "service"
	FormInvoice FormKind = "invoice"
	FormPayment FormKind = "payment"
	FormPayout  FormKind = "payout"
)

// NewEntity is the entity id used for drafts of records that do not exist yet.
const NewEntity = "new"

func (f FormKind) Valid() bool {
	switch f {
	case FormEvent, FormService, FormInvoice, FormPayment, FormPayout:
		return true
	}
	return false
}

// DraftKey identifies one draft. Session scoping keeps drafts of different
// browser sessions apart.
type DraftKey struct {
	Session  string
	Form     FormKind
	EntityID string
}

func (k DraftKey) String() string {
	entity := k.EntityID
	if entity == "" {
		entity = NewEntity
	}
	return strings.Join([]string{"draft", k.Session, string(k.Form), entity}, ":")
}

// SessionPrefix is the key prefix shared by every draft of a session.
func SessionPrefix(session string) string {
	return "draft:" + session + ":"
}
