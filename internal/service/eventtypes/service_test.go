package eventtypes

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/infra/storage/memory"
	"github.com/m04kA/GSO-BookingService/internal/service/eventtypes/models"
	"github.com/m04kA/GSO-BookingService/pkg/logger"
	"github.com/m04kA/GSO-BookingService/pkg/ptr"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(ctx context.Context, action, actor, entityID string, meta map[string]interface{}) error {
	args := m.Called(ctx, action, actor, entityID, meta)
	return args.Error(0)
}

func newService(t *testing.T) (*Service, *memory.Store, *MockAuditRecorder) {
	t.Helper()
	store := memory.NewStore()
	store.SeedEventTypes(domain.DefaultEventTypes())

	audit := new(MockAuditRecorder)
	audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	return NewService(store.EventTypes(), audit, logger.NewNop()), store, audit
}

func TestService_ListSortedByName(t *testing.T) {
	svc, _, _ := newService(t)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "BADMINTON SESSION", got[0].Name)
	assert.Equal(t, "VOLLEYBALL TRAINING", got[2].Name)
}

func TestService_CreateUpdateDelete(t *testing.T) {
	svc, _, audit := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin", &models.CreateEventTypeRequest{
		Name:             "  ZUMBA  ",
		BaseAmount:       300,
		DefaultResources: domain.Resources{Sounds: true},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, idPrefix))
	assert.Equal(t, "ZUMBA", created.Name)
	audit.AssertCalled(t, "Record", mock.Anything, domain.AuditEventTypeCreated, "admin", created.ID, mock.Anything)

	updated, err := svc.Update(ctx, created.ID, "admin", &models.UpdateEventTypeRequest{BaseAmount: ptr.Ptr(350.0)})
	require.NoError(t, err)
	assert.Equal(t, "ZUMBA", updated.Name)
	assert.Equal(t, 350.0, updated.BaseAmount)
	assert.Equal(t, domain.Resources{Sounds: true}, updated.DefaultResources)

	require.NoError(t, svc.Delete(ctx, created.ID, "admin"))
	audit.AssertCalled(t, "Record", mock.Anything, domain.AuditEventTypeDeleted, "admin", created.ID, mock.Anything)

	_, err = svc.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrEventTypeNotFound)
	assert.ErrorIs(t, err, domain.ErrEventTypeNotFound)
}

func TestService_CreateValidation(t *testing.T) {
	svc, _, audit := newService(t)

	_, err := svc.Create(context.Background(), "admin", &models.CreateEventTypeRequest{Name: " "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), "admin", &models.CreateEventTypeRequest{Name: "X", BaseAmount: -1})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	audit.AssertNumberOfCalls(t, "Record", 0)
}

func TestService_UpdateAndDeleteMissing(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Update(context.Background(), "evt-404", "admin", &models.UpdateEventTypeRequest{Name: ptr.Ptr("X")})
	require.ErrorIs(t, err, ErrEventTypeNotFound)

	err = svc.Delete(context.Background(), "evt-404", "admin")
	require.ErrorIs(t, err, ErrEventTypeNotFound)
}

func TestService_DeleteDetachesBookings(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	b := &domain.Booking{
		ID:          "bk-1",
		RequestedBy: "GSO staff",
		Event:       domain.KnownEvent("evt-1", "VOLLEYBALL TRAINING"),
		Venue:       domain.VenueUnladGymnasium,
		Dates:       []time.Time{time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		StartTime:   types.TimeString("19:00"),
		EndTime:     types.TimeString("22:00"),
		Amount:      1500,
	}
	b.ApplyPricing()
	require.NoError(t, store.Bookings().Create(ctx, b))

	require.NoError(t, svc.Delete(ctx, "evt-1", "admin"))

	stored, err := store.Bookings().GetByID(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CustomEvent("VOLLEYBALL TRAINING"), stored.Event)
}
