package list_event_types

import (
	"net/http"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/event-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventTypes, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /event-types - Failed to list event types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]*handlers.EventTypeResponse, 0, len(eventTypes))
	for _, et := range eventTypes {
		response = append(response, handlers.FromDomainEventType(et))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}
