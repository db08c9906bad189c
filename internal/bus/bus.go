// Package bus is an in-process publish/subscribe channel for domain events
// such as "invoices.updated".
package bus

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/logger"
)

// Handler receives one published event. Handlers run synchronously in the
// publisher's goroutine and must not block.
type Handler func(ctx context.Context, name string, payload any)

type subscription struct {
	id      uint64
	name    string
	handler Handler
}

// Local delivers events to subscribers registered for an exact name, or for
// every name when subscribed with "*".
type Local struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
	logger logger.Logger
}

func NewLocal(log logger.Logger) *Local {
	return &Local{logger: log}
}

// Subscribe registers h for name and returns a function that removes it.
func (b *Local) Subscribe(name string, h Handler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, name: name, handler: h})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

func (b *Local) Publish(ctx context.Context, name string, payload any) {
	b.mu.RLock()
	targets := make([]Handler, 0, len(b.subs))
	for _, s := range b.subs {
		if s.name == name || s.name == "*" {
			targets = append(targets, s.handler)
		}
	}
	b.mu.RUnlock()

	if len(targets) == 0 {
		return
	}

	b.logger.Debug("event published",
		logger.String("event", name),
		logger.Int("subscribers", len(targets)),
	)
	for _, h := range targets {
		h(ctx, name, payload)
	}
}
