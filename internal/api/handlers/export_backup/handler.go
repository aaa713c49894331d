package export_backup

import (
	"net/http"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
)

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

// Handle GET /api/v1/admin/backup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	backup, err := h.service.Export(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/backup - Failed to export: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/backup - Exported %d event types, %d bookings", len(backup.EventTypes), len(backup.Bookings))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBackup(backup))
}
