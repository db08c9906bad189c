package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/stpnv0/StudioDesk/internal/optimistic"
	"github.com/wb-go/wbf/logger"
)

// Refresher reloads one collection from the canonical store.
type Refresher interface {
	Name() string
	Refresh(ctx context.Context) error
}

type Scheduler struct {
	collections []Refresher
	interval    time.Duration
	logger      logger.Logger
}

func New(
	collections []Refresher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		collections: collections,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Int("collections", len(s.collections)),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	for _, c := range s.collections {
		err := c.Refresh(ctx)
		switch {
		case err == nil:
		case errors.Is(err, optimistic.ErrBusy):
			s.logger.Debug("refresh skipped, mutations in flight",
				logger.String("collection", c.Name()),
			)
		default:
			s.logger.Error("failed to refresh collection",
				logger.String("collection", c.Name()),
				logger.String("error", err.Error()),
			)
		}
	}
}
