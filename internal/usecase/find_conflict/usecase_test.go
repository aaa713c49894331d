package find_conflict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/infra/storage/memory"
	"github.com/m04kA/GSO-BookingService/pkg/logger"
	"github.com/m04kA/GSO-BookingService/pkg/ptr"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindActiveByVenueAndDates(ctx context.Context, venue domain.Venue, dates []time.Time, ignoreID *string) ([]*domain.Booking, error) {
	args := m.Called(ctx, venue, dates, ignoreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) IncConflict(venue string) {
	m.Called(venue)
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

func newUseCaseWithStore(t *testing.T, existing ...*domain.Booking) *UseCase {
	t.Helper()
	store := memory.NewStore()
	for _, b := range existing {
		require.NoError(t, store.Bookings().Create(context.Background(), b))
	}
	return NewUseCase(store.Bookings(), nil, logger.NewNop())
}

func TestExecute_ConcreteOverlap(t *testing.T) {
	uc := newUseCaseWithStore(t, booking("bk-1", domain.VenueUnladGymnasium, "19:00", "22:00", "2025-06-10"))

	resp, err := uc.Execute(context.Background(), &Request{
		Venue:     "Unlad Gymnasium",
		Dates:     []time.Time{day("2025-06-10")},
		StartTime: "21:00",
		EndTime:   "23:00",
	})

	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, domain.ReasonScheduleConflict, resp.Reason)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, "bk-1", resp.Conflict.BookingID)
	assert.Equal(t, day("2025-06-10"), resp.Conflict.Date)
	assert.Equal(t, types.TimeString("19:00"), resp.Conflict.StartTime)
	assert.Equal(t, types.TimeString("22:00"), resp.Conflict.EndTime)
	assert.Equal(t, "Schedule conflict: Unlad Gymnasium already reserved on 2025-06-10 (19:00 - 22:00).", resp.Message)

	var conflictErr *domain.ConflictError
	require.ErrorAs(t, resp.Err(), &conflictErr)
	assert.ErrorIs(t, resp.Err(), domain.ErrScheduleConflict)
}

func TestExecute_TouchingBoundaryIsAccepted(t *testing.T) {
	uc := newUseCaseWithStore(t, booking("bk-1", domain.VenueUnladGymnasium, "19:00", "22:00", "2025-06-10"))

	for _, window := range [][2]types.TimeString{{"22:00", "23:00"}, {"17:00", "19:00"}} {
		resp, err := uc.Execute(context.Background(), &Request{
			Venue:     domain.VenueUnladGymnasium,
			Dates:     []time.Time{day("2025-06-10")},
			StartTime: window[0],
			EndTime:   window[1],
		})
		require.NoError(t, err)
		assert.True(t, resp.OK, "%s-%s", window[0], window[1])
		assert.NoError(t, resp.Err())
	}
}

func TestExecute_SelfIgnoreOnUpdate(t *testing.T) {
	uc := newUseCaseWithStore(t, booking("bk-1", domain.VenueUnladGymnasium, "19:00", "22:00", "2025-06-10"))

	resp, err := uc.Execute(context.Background(), &Request{
		Venue:     domain.VenueUnladGymnasium,
		Dates:     []time.Time{day("2025-06-10")},
		StartTime: "19:30",
		EndTime:   "22:00",
		IgnoreID:  ptr.Ptr("bk-1"),
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestExecute_ArchivedNeverBlocks(t *testing.T) {
	archived := booking("bk-1", domain.VenueNoveletaPlaza, "19:00", "22:00", "2025-06-10")
	archived.Archived = true
	uc := newUseCaseWithStore(t, archived)

	resp, err := uc.Execute(context.Background(), &Request{
		Venue:     domain.VenueNoveletaPlaza,
		Dates:     []time.Time{day("2025-06-10")},
		StartTime: "19:00",
		EndTime:   "22:00",
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestExecute_OtherVenueOrDateDoesNotBlock(t *testing.T) {
	uc := newUseCaseWithStore(t,
		booking("bk-1", domain.VenueNoveletaPlaza, "19:00", "22:00", "2025-06-10"),
		booking("bk-2", domain.VenueUnladGymnasium, "19:00", "22:00", "2025-06-11"),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Venue:     domain.VenueUnladGymnasium,
		Dates:     []time.Time{day("2025-06-10")},
		StartTime: "19:00",
		EndTime:   "22:00",
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestExecute_FirstConflictFollowsDateOrder(t *testing.T) {
	uc := newUseCaseWithStore(t,
		booking("early", domain.VenueUnladGymnasium, "08:00", "12:00", "2025-06-10"),
		booking("late", domain.VenueUnladGymnasium, "08:00", "12:00", "2025-06-12"),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Venue:     domain.VenueUnladGymnasium,
		Dates:     []time.Time{day("2025-06-12"), day("2025-06-10")},
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, "late", resp.Conflict.BookingID)
	assert.Equal(t, day("2025-06-12"), resp.Conflict.Date)
}

func TestExecute_SkipsUnparsableStoredTimes(t *testing.T) {
	legacy := booking("legacy", domain.VenueUnladGymnasium, "7pm", "10pm", "2025-06-10")
	uc := newUseCaseWithStore(t, legacy)

	resp, err := uc.Execute(context.Background(), &Request{
		Venue:     domain.VenueUnladGymnasium,
		Dates:     []time.Time{day("2025-06-10")},
		StartTime: "19:00",
		EndTime:   "22:00",
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestExecute_Preconditions(t *testing.T) {
	testCases := []struct {
		name        string
		req         *Request
		wantReason  string
		wantMessage string
	}{
		{
			name:        "empty venue",
			req:         &Request{Venue: "", StartTime: "20:00", EndTime: "19:00"},
			wantReason:  domain.ReasonVenueRequired,
			wantMessage: "Venue is required",
		},
		{
			name:        "unknown venue",
			req:         &Request{Venue: "Town Plaza", StartTime: "19:00", EndTime: "20:00"},
			wantReason:  domain.ReasonVenueRequired,
			wantMessage: "Venue is required",
		},
		{
			name:        "bad format wins over ordering",
			req:         &Request{Venue: domain.VenueUnladGymnasium, StartTime: "7pm", EndTime: "19:00"},
			wantReason:  domain.ReasonInvalidTimeFormat,
			wantMessage: "Invalid time format",
		},
		{
			name:        "reversed times",
			req:         &Request{Venue: domain.VenueUnladGymnasium, Dates: []time.Time{day("2025-06-10")}, StartTime: "20:00", EndTime: "19:00"},
			wantReason:  domain.ReasonInvalidTimeRange,
			wantMessage: "End time must be after start time",
		},
		{
			name:        "equal times",
			req:         &Request{Venue: domain.VenueUnladGymnasium, StartTime: "19:00", EndTime: "19:00"},
			wantReason:  domain.ReasonInvalidTimeRange,
			wantMessage: "End time must be after start time",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			uc := NewUseCase(repo, nil, logger.NewNop())

			resp, err := uc.Execute(context.Background(), tc.req)

			require.NoError(t, err)
			assert.False(t, resp.OK)
			assert.Equal(t, tc.wantReason, resp.Reason)
			assert.Equal(t, tc.wantMessage, resp.Message)
			assert.ErrorIs(t, resp.Err(), domain.ErrInvalidInput)
			repo.AssertNotCalled(t, "FindActiveByVenueAndDates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_EmptyDatesAccepted(t *testing.T) {
	repo := new(MockBookingRepository)
	uc := NewUseCase(repo, nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		Venue:     domain.VenueUnladGymnasium,
		StartTime: "19:00",
		EndTime:   "22:00",
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	repo.AssertNotCalled(t, "FindActiveByVenueAndDates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("FindActiveByVenueAndDates", mock.Anything, domain.VenueUnladGymnasium, mock.Anything, (*string)(nil)).
		Return(nil, errors.New("connection reset"))
	uc := NewUseCase(repo, nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		Venue:     domain.VenueUnladGymnasium,
		Dates:     []time.Time{day("2025-06-10")},
		StartTime: "19:00",
		EndTime:   "22:00",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestExecute_CountsConflicts(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("FindActiveByVenueAndDates", mock.Anything, domain.VenueNoveletaPlaza, mock.Anything, (*string)(nil)).
		Return([]*domain.Booking{booking("bk-1", domain.VenueNoveletaPlaza, "10:00", "12:00", "2025-06-10")}, nil)
	metrics := new(MockMetrics)
	metrics.On("IncConflict", "Noveleta Plaza").Once()
	uc := NewUseCase(repo, metrics, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		Venue:     domain.VenueNoveletaPlaza,
		Dates:     []time.Time{day("2025-06-10")},
		StartTime: "11:00",
		EndTime:   "13:00",
	})

	require.NoError(t, err)
	assert.False(t, resp.OK)
	metrics.AssertExpectations(t)
}
