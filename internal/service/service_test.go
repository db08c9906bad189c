package service

import (
	"context"
	"testing"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// echo* play a store that accepts every update and bumps the version.
func echoEvent(_ context.Context, e domain.Event) (domain.Event, error) {
	e.Version++
	return e, nil
}

func echoInvoice(_ context.Context, inv domain.Invoice) (domain.Invoice, error) {
	inv.Version++
	return inv, nil
}

func echoLedger(_ context.Context, l domain.TeamLedger) (domain.TeamLedger, error) {
	l.Version++
	return l, nil
}

func mustRefresh(t *testing.T, refresh func(context.Context) error) {
	t.Helper()
	require.NoError(t, refresh(context.Background()))
}
