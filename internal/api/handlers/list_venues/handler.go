package list_venues

import (
	"net/http"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// Handle GET /api/v1/venues
func Handle(w http.ResponseWriter, _ *http.Request) {
	venues := make([]string, 0, len(domain.Venues))
	for _, v := range domain.Venues {
		venues = append(venues, v.String())
	}
	handlers.RespondJSON(w, http.StatusOK, venues)
}
