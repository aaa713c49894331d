package delete_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/GSO-BookingService/internal/api/middleware"
	"github.com/m04kA/GSO-BookingService/internal/service/bookings"
	"github.com/m04kA/GSO-BookingService/pkg/logger"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Delete(ctx context.Context, id, actor string) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

func TestHandle_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"deleted", nil, http.StatusOK},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"still active", bookings.ErrNotArchived, http.StatusConflict},
		{"storage failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockBookingService)
			svc.On("Delete", mock.Anything, "bk-1", "admin").Return(tt.err)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/bk-1", nil)
			req = req.WithContext(middleware.WithUser(req.Context(), "admin"))
			req = mux.SetURLVars(req, map[string]string{"bookingId": "bk-1"})

			rec := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}
