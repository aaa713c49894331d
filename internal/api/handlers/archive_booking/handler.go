package archive_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/api/middleware"
	"github.com/m04kA/GSO-BookingService/internal/service/bookings"
)

const msgNotFound = "бронирование не найдено"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/archive
// Переключает архив; возврат из архива снова проверяет пересечения.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	actor := middleware.UserFromContext(r.Context())

	booking, err := h.service.ToggleArchive(r.Context(), bookingID, actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/archive - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("PATCH /bookings/{id}/archive - Cannot restore: booking_id=%s, error=%v", bookingID, err)

		default:
			h.logger.Error("PATCH /bookings/{id}/archive - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/archive - booking_id=%s, archived=%t, by=%q", bookingID, booking.Archived, actor)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBooking(booking))
}
