package check_conflict

import (
	"errors"
	"net/http"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/domain"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	checker ConflictChecker
	logger  Logger
}

func NewHandler(checker ConflictChecker, logger Logger) *Handler {
	return &Handler{
		checker: checker,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check-conflict
// Подсказка для формы: отказ отдаётся со статусом 200 и ok=false.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-conflict - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			handlers.RespondJSON(w, http.StatusOK, &CheckConflictResponse{Reason: vErr.Reason, Message: vErr.Message})
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.checker.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("POST /bookings/check-conflict - Failed: venue=%q, error=%v", req.Venue, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
