package get_venue_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/infra/storage/memory"
	venueAvailability "github.com/m04kA/GSO-BookingService/internal/usecase/get_venue_availability"
	"github.com/m04kA/GSO-BookingService/pkg/logger"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Bookings().Create(context.Background(), &domain.Booking{
		ID:          "bk-1",
		RequestedBy: "GSO staff",
		Event:       domain.CustomEvent("Assembly"),
		Venue:       domain.VenueUnladGymnasium,
		Dates:       []time.Time{time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		StartTime:   "09:00",
		EndTime:     "11:00",
		Amount:      100,
		FinalAmount: 100,
	}))

	log := logger.NewNop()
	h := NewHandler(venueAvailability.NewUseCase(store.Bookings(), log), log)
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/venues/{venue}/availability", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_OK(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/venues/Unlad%20Gymnasium/availability?date=2025-06-10&slot=120", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Unlad Gymnasium", resp.Venue)
	assert.Equal(t, "2025-06-10", resp.Date)
	require.Len(t, resp.Busy, 1)
	assert.Equal(t, "bk-1", resp.Busy[0].BookingID)
	require.Len(t, resp.Slots, 12)
	assert.Equal(t, SlotResponse{StartTime: "08:00", EndTime: "10:00", Free: false}, resp.Slots[4])
	assert.Equal(t, SlotResponse{StartTime: "12:00", EndTime: "14:00", Free: true}, resp.Slots[6])
}

func TestHandle_BadParams(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		reason string
	}{
		{"bad date", "/api/v1/venues/Unlad%20Gymnasium/availability?date=tomorrow", domain.ReasonInvalidDate},
		{"missing date", "/api/v1/venues/Unlad%20Gymnasium/availability", domain.ReasonDateRequired},
		{"bad slot", "/api/v1/venues/Unlad%20Gymnasium/availability?date=2025-06-10&slot=abc", domain.ReasonInvalidSlot},
		{"unknown venue", "/api/v1/venues/Plaza/availability?date=2025-06-10", domain.ReasonVenueRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}
}
