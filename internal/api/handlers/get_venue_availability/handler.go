package get_venue_availability

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
)

const msgInvalidParams = "некорректные параметры запроса"

type Handler struct {
	useCase VenueAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase VenueAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venue}/availability?date=2025-06-10&slot=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue := mux.Vars(r)["venue"]

	useCaseReq, err := ToUseCaseRequest(venue, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /venues/{venue}/availability - Invalid parameters: venue=%q, error=%v", venue, err)
		if !handlers.RespondDomainError(w, err) {
			handlers.RespondBadRequest(w, msgInvalidParams)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /venues/{venue}/availability - Rejected: venue=%q, error=%v", venue, err)
			return
		}
		h.logger.Error("GET /venues/{venue}/availability - Failed: venue=%q, error=%v", venue, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
