package create_booking

import (
	"strings"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// validateRequest проверяет обязательные поля до обращения к хранилищу
func validateRequest(req *Request) error {
	requestedBy := strings.TrimSpace(req.RequestedBy)
	if requestedBy == "" {
		return domain.NewValidationError(domain.ReasonRequestedByRequired, "Requested by is required")
	}
	if len(requestedBy) > domain.MaxRequestedByLen {
		return domain.NewValidationError(domain.ReasonRequestedByRequired, "Requested by is too long")
	}

	hasTypeID := req.EventTypeID != nil && strings.TrimSpace(*req.EventTypeID) != ""
	eventName := strings.TrimSpace(req.EventName)
	if !hasTypeID && eventName == "" {
		return domain.NewValidationError(domain.ReasonEventRequired, "Event is required")
	}
	if len(eventName) > domain.MaxEventNameLen {
		return domain.NewValidationError(domain.ReasonEventRequired, "Event name is too long")
	}

	if _, ok := domain.ParseVenue(req.Venue); !ok {
		return domain.NewValidationError(domain.ReasonVenueRequired, "Venue is required")
	}

	if len(req.Dates) == 0 {
		return domain.NewValidationError(domain.ReasonDateRequired, "At least one date is required")
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return domain.NewValidationError(domain.ReasonInvalidTimeFormat, "Start and end time are required")
	}

	if req.Amount != nil && *req.Amount < 0 {
		return domain.NewValidationError(domain.ReasonInvalidAmount, "Amount must be a non-negative number")
	}

	return nil
}
