package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/optimistic"
	"github.com/stpnv0/StudioDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	store  ports.EventStore
	coord  *optimistic.Coordinator[domain.Event]
	opts   options
	logger logger.Logger
}

func NewEventService(store ports.EventStore, reporter ports.Reporter, log logger.Logger, opts ...Option) *EventService {
	o := buildOptions(opts)
	return &EventService{
		store: store,
		coord: optimistic.New[domain.Event]("events", store, reporter, log,
			coordinatorOptions(o, domain.ErrEventNotFound, domain.NormalizeEvent)...),
		opts:   o,
		logger: log,
	}
}

func (s *EventService) Name() string { return s.coord.Name() }

// Refresh reloads events from the store. It returns optimistic.ErrBusy while
// a mutation is settling.
func (s *EventService) Refresh(ctx context.Context) error {
	return s.coord.Refresh(ctx, s.store)
}

func (s *EventService) List(_ context.Context) ([]domain.Event, error) {
	return s.coord.Current().Items(), nil
}

func (s *EventService) Get(_ context.Context, id string) (domain.Event, error) {
	return s.coord.Get(id)
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (domain.Event, error) {
	if err := domain.Validate(input); err != nil {
		return domain.Event{}, err
	}

	event := domain.Event{
		ID:        localID(),
		Name:      input.Name,
		Client:    input.Client,
		Team:      input.Team,
		CreatedAt: s.opts.now(),
	}
	for _, in := range input.Services {
		event.Services = append(event.Services, newService(in))
	}

	res, err := s.coord.Apply(ctx, optimistic.Create(event))
	if err != nil {
		return domain.Event{}, err
	}
	return res.Item, nil
}

func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput) (domain.Event, error) {
	if err := domain.Validate(input); err != nil {
		return domain.Event{}, err
	}

	res, err := s.coord.Modify(ctx, id, func(e domain.Event) (domain.Event, error) {
		e.Name = input.Name
		e.Client = input.Client
		e.Team = input.Team
		return e, nil
	})
	if err != nil {
		return domain.Event{}, err
	}
	return res.Item, nil
}

// Replace overwrites the whole record, services included. A non-zero version
// must match the current one.
func (s *EventService) Replace(ctx context.Context, event domain.Event) (domain.Event, error) {
	if err := validateEvent(event); err != nil {
		return domain.Event{}, err
	}

	res, err := s.coord.Modify(ctx, event.ID, func(current domain.Event) (domain.Event, error) {
		if event.Version != 0 && event.Version != current.Version {
			return domain.Event{}, fmt.Errorf("%w: event %s is at version %d, got %d",
				domain.ErrConflict, event.ID, current.Version, event.Version)
		}
		next := event.Clone()
		next.Version = current.Version
		next.CreatedAt = current.CreatedAt
		for i := range next.Services {
			if next.Services[i].ID == "" {
				next.Services[i].ID = uuid.NewString()
			}
			if next.Services[i].Status == "" {
				next.Services[i].Status = domain.StatusScheduled
			}
		}
		return next, nil
	})
	if err != nil {
		return domain.Event{}, err
	}
	return res.Item, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	_, err := s.coord.Apply(ctx, optimistic.Delete[domain.Event](id))
	return err
}

func (s *EventService) AddService(ctx context.Context, eventID string, input domain.ServiceInput) (domain.Event, error) {
	if err := domain.Validate(input); err != nil {
		return domain.Event{}, err
	}

	svc := newService(input)
	res, err := s.coord.Modify(ctx, eventID, func(e domain.Event) (domain.Event, error) {
		e.Services = append(e.Services, svc)
		return e, nil
	})
	if err != nil {
		return domain.Event{}, err
	}
	return res.Item, nil
}

// SetServiceStatus changes one service; the event status follows on the same
// state update.
func (s *EventService) SetServiceStatus(ctx context.Context, eventID, serviceID string, status domain.Status) (domain.Event, error) {
	if !status.Valid() {
		return domain.Event{}, fmt.Errorf("%w: unknown service status %q", domain.ErrValidation, status)
	}

	res, err := s.coord.Modify(ctx, eventID, func(e domain.Event) (domain.Event, error) {
		i := e.ServiceIndex(serviceID)
		if i < 0 {
			return domain.Event{}, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, serviceID)
		}
		e.Services[i].Status = status
		return e, nil
	})
	if err != nil {
		return domain.Event{}, err
	}

	s.logger.Debug("service status changed",
		logger.String("event_id", eventID),
		logger.String("service_id", serviceID),
		logger.String("status", string(status)),
		logger.String("event_status", string(res.Item.Status)),
	)
	return res.Item, nil
}

func newService(in domain.ServiceInput) domain.Service {
	status := in.Status
	if status == "" {
		status = domain.StatusScheduled
	}
	return domain.Service{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Date:     in.Date,
		Time:     in.Time,
		Location: in.Location,
		Status:   status,
	}
}

func validateEvent(e domain.Event) error {
	if e.ID == "" {
		return fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}
	if err := domain.Validate(domain.UpdateEventInput{Name: e.Name, Client: e.Client, Team: e.Team}); err != nil {
		return err
	}
	for _, svc := range e.Services {
		in := domain.ServiceInput{Name: svc.Name, Date: svc.Date, Time: svc.Time, Location: svc.Location, Status: svc.Status}
		if err := domain.Validate(in); err != nil {
			return err
		}
	}
	return nil
}
