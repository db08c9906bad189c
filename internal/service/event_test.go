package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seededEvent() domain.Event {
	return domain.Event{
		ID:      "e1",
		Name:    "Smith wedding",
		Client:  "Smith",
		Version: 1,
		Services: []domain.Service{
			{ID: "s1", Name: "Ceremony", Date: "2026-06-01", Status: domain.StatusCompleted},
			{ID: "s2", Name: "Party", Date: "2026-06-01", Status: domain.StatusScheduled},
		},
	}
}

func newEventService(t *testing.T) (*EventService, *mocks.MockEventStore, *mocks.MockReporter) {
	t.Helper()
	store := mocks.NewMockEventStore(t)
	reporter := mocks.NewMockReporter(t)
	svc := NewEventService(store, reporter, newTestLogger(t))

	store.EXPECT().List(mock.Anything).Return([]domain.Event{seededEvent()}, nil).Once()
	mustRefresh(t, svc.Refresh)
	return svc, store, reporter
}

func TestEventService_Create_ReconcilesCanonicalID(t *testing.T) {
	svc, store, _ := newEventService(t)

	store.EXPECT().Create(mock.Anything, mock.AnythingOfType("domain.Event")).
		RunAndReturn(func(_ context.Context, e domain.Event) (domain.Event, error) {
			assert.True(t, strings.HasPrefix(e.ID, localPrefix))
			assert.Equal(t, domain.StatusScheduled, e.Status)
			e.ID = "e2"
			e.Version = 1
			return e, nil
		})

	got, err := svc.Create(context.Background(), domain.CreateEventInput{
		Name:     "Gala",
		Services: []domain.ServiceInput{{Name: "Dinner", Date: "2026-07-01"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "e2", got.ID)
	assert.Equal(t, domain.StatusScheduled, got.Services[0].Status)

	events, _ := svc.List(context.Background())
	require.Len(t, events, 2)
	assert.Equal(t, "e2", events[0].ID)
	assert.Equal(t, "e1", events[1].ID)
}

func TestEventService_Create_ValidationBeforeApply(t *testing.T) {
	svc, _, _ := newEventService(t)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Name:     "Gala",
		Services: []domain.ServiceInput{{Name: "Dinner", Date: "01/07/2026"}},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	events, _ := svc.List(context.Background())
	assert.Len(t, events, 1)
}

func TestEventService_SetServiceStatus_DerivesEventStatus(t *testing.T) {
	svc, store, _ := newEventService(t)

	before, err := svc.Get(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, before.Status)

	store.EXPECT().Update(mock.Anything, mock.AnythingOfType("domain.Event")).RunAndReturn(echoEvent)

	got, err := svc.SetServiceStatus(context.Background(), "e1", "s2", domain.StatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, int64(2), got.Version)
}

func TestEventService_SetServiceStatus_RollbackOnRejection(t *testing.T) {
	svc, store, reporter := newEventService(t)
	before, _ := svc.List(context.Background())

	store.EXPECT().Update(mock.Anything, mock.Anything).
		Return(domain.Event{}, &domain.RejectionError{Status: 422, Message: "event is locked"})
	reporter.EXPECT().Report(mock.Anything, "event is locked").Return()

	_, err := svc.SetServiceStatus(context.Background(), "e1", "s2", domain.StatusCompleted)

	assert.ErrorIs(t, err, domain.ErrServerRejection)
	after, _ := svc.List(context.Background())
	assert.Equal(t, before, after)
}

func TestEventService_SetServiceStatus_Errors(t *testing.T) {
	svc, _, _ := newEventService(t)

	_, err := svc.SetServiceStatus(context.Background(), "e1", "s2", "done")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.SetServiceStatus(context.Background(), "e1", "missing", domain.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)

	_, err = svc.SetServiceStatus(context.Background(), "nope", "s1", domain.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_AddService(t *testing.T) {
	svc, store, _ := newEventService(t)
	store.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(echoEvent)

	got, err := svc.AddService(context.Background(), "e1", domain.ServiceInput{Name: "Brunch", Date: "2026-06-02", Time: "10:30"})

	require.NoError(t, err)
	require.Len(t, got.Services, 3)
	assert.NotEmpty(t, got.Services[2].ID)
	assert.Equal(t, domain.StatusScheduled, got.Services[2].Status)
}

func TestEventService_Replace_StaleVersion(t *testing.T) {
	svc, _, _ := newEventService(t)

	e := seededEvent()
	e.Version = 7

	_, err := svc.Replace(context.Background(), e)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestEventService_Delete_FailureRestoresEvent(t *testing.T) {
	svc, store, reporter := newEventService(t)

	store.EXPECT().Delete(mock.Anything, "e1").Return(domain.ErrNetwork)
	reporter.EXPECT().Report(mock.Anything, domain.UserMessage(domain.ErrNetwork)).Return()

	err := svc.Delete(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrNetwork)
	got, err := svc.Get(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Smith wedding", got.Name)
}
