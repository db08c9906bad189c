package notification

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/logger"
)

const defaultQueueSize = 64

type queued struct {
	ctx     context.Context
	message string
}

// Async hands reports to a background worker so callers never wait on slow
// channels. Reports arriving while the queue is full are logged and dropped.
type Async struct {
	next   Reporter
	logger logger.Logger
	queue  chan queued
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewAsync(next Reporter, size int, log logger.Logger) *Async {
	if size <= 0 {
		size = defaultQueueSize
	}
	a := &Async{
		next:   next,
		logger: log,
		queue:  make(chan queued, size),
		done:   make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *Async) run() {
	defer close(a.done)
	for q := range a.queue {
		a.next.Report(q.ctx, q.message)
	}
}

func (a *Async) Report(ctx context.Context, message string) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return
	}

	select {
	case a.queue <- queued{ctx: context.WithoutCancel(ctx), message: message}:
	default:
		a.logger.Warn("report queue full, dropping report", logger.String("message", message))
	}
}

// Close stops accepting reports and waits for the queued ones to be delivered
// or for ctx to end.
func (a *Async) Close(ctx context.Context) error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
