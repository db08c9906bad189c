package ports

import "context"

// Reporter shows a failure message to the person who triggered the mutation.
type Reporter interface {
	Report(ctx context.Context, message string)
}

type EventPublisher interface {
	Publish(ctx context.Context, name string, payload any)
}
