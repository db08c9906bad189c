package bus

import (
	"context"

	"github.com/wb-go/wbf/logger"
)

// JSONPublisher sends a payload to an external broker under a routing key.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Forward relays the named events (all events when names is empty) to pub.
// Broker failures are logged and never reach the publisher of the event.
func Forward(b *Local, pub JSONPublisher, log logger.Logger, names ...string) func() {
	relay := func(ctx context.Context, name string, payload any) {
		if err := pub.PublishJSON(ctx, name, payload); err != nil {
			log.Error("failed to forward event",
				logger.String("event", name),
				logger.String("error", err.Error()),
			)
		}
	}

	if len(names) == 0 {
		return b.Subscribe("*", relay)
	}

	unsubs := make([]func(), 0, len(names))
	for _, name := range names {
		unsubs = append(unsubs, b.Subscribe(name, relay))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
