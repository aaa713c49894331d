package update_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/GSO-BookingService/internal/api/middleware"
	"github.com/m04kA/GSO-BookingService/internal/domain"
	updateBooking "github.com/m04kA/GSO-BookingService/internal/usecase/update_booking"
	"github.com/m04kA/GSO-BookingService/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *updateBooking.Request) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	return req.WithContext(middleware.WithUser(req.Context(), "admin"))
}

func TestHandle_AcceptsComputedFieldsFromForm(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *updateBooking.Request) bool {
		return r.ID == "bk-1" && r.Actor == "admin" && r.Amount != nil && *r.Amount == 1000
	})).Return(&domain.Booking{
		ID:          "bk-1",
		RequestedBy: "GSO staff",
		Event:       domain.CustomEvent("Assembly"),
		Venue:       domain.VenueUnladGymnasium,
		Dates:       []time.Time{time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		StartTime:   "19:00",
		EndTime:     "22:00",
		Amount:      1000,
		FinalAmount: 1000,
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, newRequest("bk-1", `{
		"requestedBy": "GSO staff",
		"eventName": "Assembly",
		"venue": "Unlad Gymnasium",
		"date": "2025-06-10",
		"startTime": "19:00",
		"endTime": "22:00",
		"amount": 1000,
		"durationHours": 3,
		"discountValue": 999,
		"finalAmount": 1
	}`))

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"unknown field", `{"price":1}`, nil, http.StatusBadRequest},
		{"bad date", `{"date":"10.06.2025"}`, nil, http.StatusBadRequest},
		{"not found", `{"date":"2025-06-10"}`, updateBooking.ErrBookingNotFound, http.StatusNotFound},
		{"conflict", `{"date":"2025-06-10"}`, domain.NewConflictError(domain.Conflict{BookingID: "bk-2"}), http.StatusConflict},
		{"internal", `{"date":"2025-06-10"}`, updateBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, newRequest("bk-1", tt.body))

			assert.Equal(t, tt.status, rec.Code)
			if tt.err == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
