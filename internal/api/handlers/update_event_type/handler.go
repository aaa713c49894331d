package update_event_type

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/api/middleware"
	"github.com/m04kA/GSO-BookingService/internal/service/eventtypes"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "тип события не найден"
)

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

// Handle PUT /api/v1/event-types/{eventTypeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventTypeID := mux.Vars(r)["eventTypeId"]

	var req UpdateEventTypeRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /event-types/{id} - Invalid request body: id=%s, error=%v", eventTypeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	eventType, err := h.service.Update(r.Context(), eventTypeID, middleware.UserFromContext(r.Context()), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, eventtypes.ErrEventTypeNotFound):
			h.logger.Warn("PUT /event-types/{id} - Event type not found: id=%s", eventTypeID)
			handlers.RespondNotFound(w, msgNotFound)

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("PUT /event-types/{id} - Rejected: id=%s, error=%v", eventTypeID, err)

		default:
			h.logger.Error("PUT /event-types/{id} - Failed to update: id=%s, error=%v", eventTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainEventType(eventType))
}
