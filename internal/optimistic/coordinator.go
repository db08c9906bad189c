package optimistic

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrBusy is returned by Refresh while mutations are still settling.
var ErrBusy = errors.New("mutations in flight")

// Store persists one collection and answers with canonical records.
type Store[T any] interface {
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, key string) error
}

type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Reporter surfaces failed mutations to the user.
type Reporter interface {
	Report(ctx context.Context, message string)
}

type Publisher interface {
	Publish(ctx context.Context, name string, payload any)
}

// Result is a settled mutation. Item is the canonical record for creates and
// updates and the removed record for deletes.
type Result[T Entity[T]] struct {
	Collection Collection[T]
	Item       T
	Err        error
}

type Option[T Entity[T]] func(*Coordinator[T])

// WithNormalize sets the function that recomputes derived fields.
func WithNormalize[T Entity[T]](fn func(T) T) Option[T] {
	return func(c *Coordinator[T]) { c.normalize = fn }
}

func WithPublisher[T Entity[T]](p Publisher) Option[T] {
	return func(c *Coordinator[T]) { c.publisher = p }
}

// WithNotFound sets the error returned for mutations on unknown keys.
func WithNotFound[T Entity[T]](err error) Option[T] {
	return func(c *Coordinator[T]) { c.notFound = err }
}

// WithTimeout bounds every remote call. Zero leaves it to the transport.
func WithTimeout[T Entity[T]](d time.Duration) Option[T] {
	return func(c *Coordinator[T]) { c.timeout = d }
}

// Coordinator owns one collection and is its only writer.
type Coordinator[T Entity[T]] struct {
	name      string
	store     Store[T]
	reporter  Reporter
	publisher Publisher
	normalize func(T) T
	notFound  error
	timeout   time.Duration
	logger    logger.Logger
	tracer    trace.Tracer

	mu       sync.RWMutex
	current  Collection[T]
	inflight atomic.Int64
	epoch    atomic.Uint64 // bumped on every locally applied mutation
	keys     *keyLocks
}

func New[T Entity[T]](name string, store Store[T], reporter Reporter, log logger.Logger, opts ...Option[T]) *Coordinator[T] {
	c := &Coordinator[T]{
		name:      name,
		store:     store,
		reporter:  reporter,
		normalize: func(t T) T { return t.Clone() },
		notFound:  ErrNotFound,
		logger:    log,
		tracer:    otel.Tracer("studiodesk/optimistic"),
		current:   NewCollection[T](nil),
		keys:      newKeyLocks(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator[T]) Name() string { return c.name }

// Current returns the visible collection with derived fields recomputed.
func (c *Coordinator[T]) Current() Collection[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.mapItems(c.normalize)
}

// Get returns the visible record for key.
func (c *Coordinator[T]) Get(key string) (T, error) {
	item, ok := c.Current().Find(key)
	if !ok {
		var zero T
		return zero, c.notFound
	}
	return item, nil
}

// Load replaces the collection wholesale, e.g. with a fresh list from the store.
func (c *Coordinator[T]) Load(items []T) {
	normalized := make([]T, len(items))
	for i, it := range items {
		normalized[i] = c.normalize(it)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	next := NewCollection(normalized)
	next.version = c.current.version + 1
	c.current = next
}

// Refresh reloads canonical records unless a mutation is still settling or
// one started while the list was being fetched.
func (c *Coordinator[T]) Refresh(ctx context.Context, lister Lister[T]) error {
	if c.inflight.Load() > 0 {
		return ErrBusy
	}
	epoch := c.epoch.Load()

	items, err := lister.List(ctx)
	if err != nil {
		return fmt.Errorf("list %s: %w", c.name, err)
	}

	normalized := make([]T, len(items))
	for i, it := range items {
		normalized[i] = c.normalize(it)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight.Load() > 0 || c.epoch.Load() != epoch {
		return ErrBusy
	}
	next := NewCollection(normalized)
	next.version = c.current.version + 1
	c.current = next
	return nil
}

// Apply runs one optimistic mutation to completion. On remote failure the
// returned collection is the restored one and the error is the remote error.
func (c *Coordinator[T]) Apply(ctx context.Context, m Mutation[T]) (Result[T], error) {
	unlock := c.keys.lock(m.Key())
	defer unlock()

	return c.apply(ctx, m)
}

// ApplyAsync starts Apply in the background. The local change is visible
// through Current as soon as it is applied.
func (c *Coordinator[T]) ApplyAsync(ctx context.Context, m Mutation[T]) <-chan Result[T] {
	out := make(chan Result[T], 1)
	go func() {
		res, _ := c.Apply(ctx, m)
		out <- res
	}()
	return out
}

// Modify performs a read-modify-write on the latest version of key. fn gets a
// private copy; an error from fn aborts before anything is applied.
func (c *Coordinator[T]) Modify(ctx context.Context, key string, fn func(T) (T, error)) (Result[T], error) {
	unlock := c.keys.lock(key)
	defer unlock()

	item, err := c.Get(key)
	if err != nil {
		return Result[T]{Collection: c.Current(), Err: err}, err
	}

	next, err := fn(item)
	if err != nil {
		return Result[T]{Collection: c.Current(), Err: err}, err
	}
	if next.Key() != key {
		err = fmt.Errorf("%w: key changed from %s to %s", domain.ErrValidation, key, next.Key())
		return Result[T]{Collection: c.Current(), Err: err}, err
	}

	return c.apply(ctx, Update(next))
}

func (c *Coordinator[T]) apply(ctx context.Context, m Mutation[T]) (Result[T], error) {
	if m.Op != OpDelete {
		m.Item = c.normalize(m.Item)
	}

	c.mu.Lock()
	tx := Begin(c.current)
	applied, err := tx.Apply(m)
	if err != nil {
		c.mu.Unlock()
		if errors.Is(err, ErrNotFound) {
			err = fmt.Errorf("%w: %s", c.notFound, m.Key())
		} else {
			err = fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		return Result[T]{Collection: c.Current(), Err: err}, err
	}
	c.current = applied
	c.inflight.Add(1)
	c.epoch.Add(1)
	c.mu.Unlock()
	defer c.inflight.Add(-1)

	canonical, err := c.persist(ctx, m)
	if err != nil {
		return c.rollback(ctx, tx, m, err)
	}

	c.mu.Lock()
	committed, err := tx.Commit(c.current, c.normalize(canonical))
	if err == nil {
		c.current = committed
	}
	c.mu.Unlock()

	if m.Op == OpDelete {
		canonical = tx.prev
	}

	c.logger.Debug("mutation confirmed",
		logger.String("collection", c.name),
		logger.String("op", m.Op.String()),
		logger.String("key", m.Key()),
		logger.String("canonical_key", canonical.Key()),
	)
	c.publish(ctx, m.Op, canonical)

	return Result[T]{Collection: c.Current(), Item: c.normalize(canonical)}, nil
}

func (c *Coordinator[T]) persist(ctx context.Context, m Mutation[T]) (T, error) {
	// An in-flight request is never aborted by the caller; it settles on the
	// real outcome.
	ctx = context.WithoutCancel(ctx)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctx, span := c.tracer.Start(ctx, c.name+"."+m.Op.String(),
		trace.WithAttributes(attribute.String("entity.key", m.Key())),
	)
	defer span.End()

	var (
		canonical T
		err       error
	)
	switch m.Op {
	case OpCreate:
		canonical, err = c.store.Create(ctx, m.Item)
	case OpUpdate:
		canonical, err = c.store.Update(ctx, m.Item)
	case OpDelete:
		err = c.store.Delete(ctx, m.Key())
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return canonical, err
}

func (c *Coordinator[T]) rollback(ctx context.Context, tx *Tx[T], m Mutation[T], cause error) (Result[T], error) {
	c.mu.Lock()
	restored, err := tx.Rollback(c.current)
	if err == nil {
		c.current = restored
	}
	c.mu.Unlock()

	c.logger.Warn("mutation rolled back",
		logger.String("collection", c.name),
		logger.String("op", m.Op.String()),
		logger.String("key", m.Key()),
		logger.String("error", cause.Error()),
	)
	if c.reporter != nil {
		c.reporter.Report(context.WithoutCancel(ctx), domain.UserMessage(cause))
	}

	err = fmt.Errorf("%s %s: %w", m.Op, c.name, cause)
	return Result[T]{Collection: c.Current(), Err: err}, err
}

func (c *Coordinator[T]) publish(ctx context.Context, op Op, item T) {
	if c.publisher == nil {
		return
	}

	var name string
	switch op {
	case OpCreate:
		name = c.name + ".created"
	case OpUpdate:
		name = c.name + ".updated"
	case OpDelete:
		name = c.name + ".deleted"
	}
	c.publisher.Publish(context.WithoutCancel(ctx), name, item)
}
