package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/infra/storage/memory"
	"github.com/m04kA/GSO-BookingService/internal/service/bookings/models"
	"github.com/m04kA/GSO-BookingService/internal/usecase/find_conflict"
	"github.com/m04kA/GSO-BookingService/pkg/logger"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(ctx context.Context, action, actor, entityID string, meta map[string]interface{}) error {
	args := m.Called(ctx, action, actor, entityID, meta)
	return args.Error(0)
}

func day(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func booking(id string, venue domain.Venue, start, end string, dates ...string) *domain.Booking {
	b := &domain.Booking{
		ID:          id,
		RequestedBy: "GSO staff",
		Event:       domain.KnownEvent("evt-1", "VOLLEYBALL TRAINING"),
		Venue:       venue,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Amount:      1500,
	}
	for _, d := range dates {
		b.Dates = append(b.Dates, day(d))
	}
	b.ApplyPricing()
	return b
}

func newService(t *testing.T, allowDeleteActive bool, existing ...*domain.Booking) (*Service, *memory.Store, *MockAuditRecorder) {
	t.Helper()
	store := memory.NewStore()
	for _, b := range existing {
		require.NoError(t, store.Bookings().Create(context.Background(), b))
	}

	audit := new(MockAuditRecorder)
	audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	log := logger.NewNop()
	svc := NewService(store.Bookings(), find_conflict.NewUseCase(store.Bookings(), nil, log),
		audit, nil, store.TxManager(), log, allowDeleteActive)
	return svc, store, audit
}

func TestService_GetByID(t *testing.T) {
	svc, _, _ := newService(t, false, booking("bk-1", domain.VenueNoveletaPlaza, "08:00", "10:00", "2025-05-01"))

	got, err := svc.GetByID(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Equal(t, domain.VenueNoveletaPlaza, got.Venue)

	_, err = svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestService_List(t *testing.T) {
	archived := booking("bk-3", domain.VenueUnladGymnasium, "08:00", "10:00", "2025-05-03")
	archived.Archived = true
	svc, _, _ := newService(t, false,
		booking("bk-1", domain.VenueUnladGymnasium, "08:00", "10:00", "2025-05-01"),
		booking("bk-2", domain.VenueNoveletaPlaza, "08:00", "10:00", "2025-05-02"),
		archived,
	)

	got, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bk-2", got[0].ID)
	assert.Equal(t, "bk-1", got[1].ID)

	got, err = svc.List(context.Background(), &models.ListBookingsRequest{Status: "all", Venue: "unlad gymnasium", Sort: "asc"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bk-1", got[0].ID)
	assert.Equal(t, "bk-3", got[1].ID)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{Status: "cancelled"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_ToggleArchive(t *testing.T) {
	svc, store, audit := newService(t, false, booking("bk-1", domain.VenueUnladGymnasium, "19:00", "22:00", "2025-06-10"))

	got, err := svc.ToggleArchive(context.Background(), "bk-1", "admin")
	require.NoError(t, err)
	assert.True(t, got.Archived)
	audit.AssertCalled(t, "Record", mock.Anything, domain.AuditBookingArchived, "admin", "bk-1", mock.Anything)

	// слот освободился
	require.NoError(t, store.Bookings().Create(context.Background(),
		booking("bk-2", domain.VenueUnladGymnasium, "20:00", "21:00", "2025-06-10")))

	_, err = svc.ToggleArchive(context.Background(), "bk-1", "admin")
	require.ErrorIs(t, err, domain.ErrScheduleConflict)

	stored, err := store.Bookings().GetByID(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.True(t, stored.Archived)

	_, err = svc.ToggleArchive(context.Background(), "missing", "admin")
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_ToggleArchiveRestoresWhenFree(t *testing.T) {
	b := booking("bk-1", domain.VenueUnladGymnasium, "19:00", "22:00", "2025-06-10")
	b.Archived = true
	svc, _, audit := newService(t, false, b)

	got, err := svc.ToggleArchive(context.Background(), "bk-1", "admin")
	require.NoError(t, err)
	assert.False(t, got.Archived)
	audit.AssertCalled(t, "Record", mock.Anything, domain.AuditBookingUnarchived, "admin", "bk-1", mock.Anything)
}

func TestService_DeleteRequiresArchived(t *testing.T) {
	svc, store, audit := newService(t, false, booking("bk-1", domain.VenueUnladGymnasium, "19:00", "22:00", "2025-06-10"))

	err := svc.Delete(context.Background(), "bk-1", "admin")
	require.ErrorIs(t, err, ErrNotArchived)
	audit.AssertNumberOfCalls(t, "Record", 0)

	_, err = svc.ToggleArchive(context.Background(), "bk-1", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "bk-1", "admin"))
	audit.AssertCalled(t, "Record", mock.Anything, domain.AuditBookingDeleted, "admin", "bk-1", mock.Anything)

	_, err = store.Bookings().GetByID(context.Background(), "bk-1")
	require.Error(t, err)

	err = svc.Delete(context.Background(), "bk-1", "admin")
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_DeleteActiveWhenAllowed(t *testing.T) {
	svc, _, _ := newService(t, true, booking("bk-1", domain.VenueUnladGymnasium, "19:00", "22:00", "2025-06-10"))

	require.NoError(t, svc.Delete(context.Background(), "bk-1", "admin"))
}
