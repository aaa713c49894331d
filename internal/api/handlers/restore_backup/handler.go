package restore_backup

import (
	"net/http"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/api/middleware"
)

const msgInvalidRequestBody = "некорректный файл резервной копии"

type Handler struct {
	service BackupService
	logger  Logger
}

func NewHandler(service BackupService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/restore
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.BackupDTO
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /admin/restore - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	backup, err := req.ToDomain()
	if err == nil {
		err = h.service.Restore(r.Context(), middleware.UserFromContext(r.Context()), backup)
	}
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /admin/restore - Rejected: %v", err)
			return
		}
		h.logger.Error("POST /admin/restore - Failed to restore: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/restore - Restored %d event types, %d bookings", len(backup.EventTypes), len(backup.Bookings))
	handlers.RespondOK(w)
}
