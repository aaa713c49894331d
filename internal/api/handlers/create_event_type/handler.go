package create_event_type

import (
	"net/http"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/api/middleware"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/event-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEventTypeRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /event-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	eventType, err := h.service.Create(r.Context(), middleware.UserFromContext(r.Context()), req.ToServiceRequest())
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /event-types - Rejected: name=%q, error=%v", req.Name, err)
			return
		}
		h.logger.Error("POST /event-types - Failed to create event type: name=%q, error=%v", req.Name, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /event-types - Event type created: id=%s", eventType.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainEventType(eventType))
}
