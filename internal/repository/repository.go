// Package repository is the Postgres store behind the optimistic coordinators.
// Derived fields (event status, invoice paid total and status) are never
// written; they are recomputed from the stored rows on every read.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const pqUniqueViolation = "23505"

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// canonicalID keeps ids that are already uuids and replaces optimistic ones.
func canonicalID(id string) string {
	if _, err := uuid.Parse(id); err == nil {
		return id
	}
	return uuid.NewString()
}

func uniqueViolation(err error, message string) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == pqUniqueViolation {
		return &domain.RejectionError{Status: http.StatusConflict, Message: message}
	}
	return nil
}

// staleOrMissing tells apart a version mismatch from a vanished row after an
// update touched nothing.
func staleOrMissing(ctx context.Context, tx *sql.Tx, query string, key any, notFound error) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, query, key).Scan(&exists); err != nil {
		return fmt.Errorf("check existence: %w", err)
	}
	if !exists {
		return notFound
	}
	return fmt.Errorf("%w: version mismatch", domain.ErrConflict)
}

func nullableUUID(id string) any {
	if id == "" {
		return nil
	}
	return id
}
