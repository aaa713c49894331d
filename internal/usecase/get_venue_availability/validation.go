package get_venue_availability

import "github.com/m04kA/GSO-BookingService/internal/domain"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.Venue, error) {
	venue, ok := domain.ParseVenue(req.Venue)
	if !ok {
		return "", domain.NewValidationError(domain.ReasonVenueRequired, "Venue is required")
	}

	if req.Date.IsZero() {
		return "", domain.NewValidationError(domain.ReasonDateRequired, "Date is required")
	}

	if req.SlotMinutes != 0 && (req.SlotMinutes < MinSlotMinutes || req.SlotMinutes > MaxSlotMinutes) {
		return "", domain.NewValidationError(domain.ReasonInvalidSlot, "Slot length must be between 15 and 720 minutes")
	}

	return venue, nil
}
