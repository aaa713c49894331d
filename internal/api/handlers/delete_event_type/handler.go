package delete_event_type

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/api/middleware"
	"github.com/m04kA/GSO-BookingService/internal/service/eventtypes"
)

const msgNotFound = "тип события не найден"

type Handler struct {
	service EventTypeService
	logger  Logger
}

func NewHandler(service EventTypeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/event-types/{eventTypeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventTypeID := mux.Vars(r)["eventTypeId"]

	if err := h.service.Delete(r.Context(), eventTypeID, middleware.UserFromContext(r.Context())); err != nil {
		switch {
		case errors.Is(err, eventtypes.ErrEventTypeNotFound):
			h.logger.Warn("DELETE /event-types/{id} - Event type not found: id=%s", eventTypeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /event-types/{id} - Failed to delete: id=%s, error=%v", eventTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /event-types/{id} - Event type deleted: id=%s", eventTypeID)
	handlers.RespondOK(w)
}
