// Package draft keeps unsaved form input for the lifetime of a session.
package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stpnv0/StudioDesk/internal/domain"
)

// Cache stores one raw JSON payload per draft key. Drafts never outlive the
// session they belong to.
type Cache interface {
	Save(ctx context.Context, key domain.DraftKey, payload json.RawMessage) error
	Load(ctx context.Context, key domain.DraftKey) (json.RawMessage, bool, error)
	Clear(ctx context.Context, key domain.DraftKey) error
	EndSession(ctx context.Context, session string) error
}

func validateKey(key domain.DraftKey) error {
	if strings.TrimSpace(key.Session) == "" {
		return fmt.Errorf("%w: draft session is required", domain.ErrValidation)
	}
	if !key.Form.Valid() {
		return fmt.Errorf("%w: unknown form %q", domain.ErrValidation, key.Form)
	}
	return nil
}

func validatePayload(payload json.RawMessage) error {
	if len(payload) == 0 || !json.Valid(payload) {
		return fmt.Errorf("%w: draft payload must be valid JSON", domain.ErrValidation)
	}
	return nil
}
