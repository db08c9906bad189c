package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrLedgerNotFound  = errors.New("team ledger not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

var (
	ErrValidation = errors.New("validation error")
)

// Remote store failures. Both trigger a full rollback of the optimistic mutation.
var (
	ErrNetwork         = errors.New("remote store unreachable")
	ErrServerRejection = errors.New("remote store rejected the request")
	ErrConflict        = errors.New("record was changed by another writer")
)

// RejectionError is a non-success answer from the remote store. Message is the
// server-provided text and is what gets reported to the user.
type RejectionError struct {
	Status  int
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status %d)", ErrServerRejection, e.Status)
	}
	return fmt.Sprintf("%s: %s", ErrServerRejection, e.Message)
}

func (e *RejectionError) Unwrap() error {
	if e.Status == http.StatusConflict {
		return ErrConflict
	}
	return ErrServerRejection
}

// UserMessage returns the text a person should see for a failed mutation.
func UserMessage(err error) string {
	var rej *RejectionError
	if errors.As(err, &rej) && rej.Message != "" {
		return rej.Message
	}

	switch {
	case errors.Is(err, ErrConflict):
		return "someone else changed this record, reload and try again"
	case errors.Is(err, ErrNetwork):
		return "could not reach the server, changes were reverted"
	case errors.Is(err, ErrServerRejection):
		return "the server refused the change, it was reverted"
	default:
		return "saving failed, changes were reverted"
	}
}
