// Package service owns the in-memory collections the API reads from and
// drives every change through an optimistic coordinator.
package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StudioDesk/internal/optimistic"
	"github.com/stpnv0/StudioDesk/internal/service/ports"
)

// localPrefix marks ids that were assigned locally and are not canonical yet.
const localPrefix = "local-"

type options struct {
	publisher ports.EventPublisher
	timeout   time.Duration
	now       func() time.Time
}

type Option func(*options)

// WithPublisher publishes confirmed mutations, e.g. "invoices.updated".
func WithPublisher(p ports.EventPublisher) Option {
	return func(o *options) { o.publisher = p }
}

// WithTimeout bounds every store call made on behalf of a mutation.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func buildOptions(opts []Option) options {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func coordinatorOptions[T optimistic.Entity[T]](o options, notFound error, normalize func(T) T) []optimistic.Option[T] {
	out := []optimistic.Option[T]{
		optimistic.WithNotFound[T](notFound),
		optimistic.WithTimeout[T](o.timeout),
	}
	if normalize != nil {
		out = append(out, optimistic.WithNormalize(normalize))
	}
	if o.publisher != nil {
		out = append(out, optimistic.WithPublisher[T](o.publisher))
	}
	return out
}

func localID() string {
	return localPrefix + uuid.NewString()
}
