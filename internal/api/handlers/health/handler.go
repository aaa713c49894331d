package health

import (
	"net/http"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
)

// Handle GET /api/health
func Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondOK(w)
}
