package update_booking

import (
	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/domain"
	updateBooking "github.com/m04kA/GSO-BookingService/internal/usecase/update_booking"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

// UpdateBookingRequest HTTP request model.
// Необязательные поля, которые не переданы, сохраняют прежние значения.
// Вычисляемые поля (durationHours, discountValue, finalAmount) игнорируются.
type UpdateBookingRequest struct {
	RequestedBy string                 `json:"requestedBy" validate:"max=200"`
	EventTypeID *string                `json:"eventTypeId"`
	EventName   string                 `json:"eventName" validate:"max=200"`
	Venue       string                 `json:"venue"`
	Date        string                 `json:"date"`
	StartTime   string                 `json:"startTime"`
	EndTime     string                 `json:"endTime"`
	Amount      *float64               `json:"amount"`
	DiscountPct *float64               `json:"discountPct"`
	Donation    *float64               `json:"donation"`
	Resources   *handlers.ResourcesDTO `json:"resources"`
	Archived    *bool                  `json:"archived"`

	DurationHours *float64 `json:"durationHours"`
	DiscountValue *float64 `json:"discountValue"`
	FinalAmount   *float64 `json:"finalAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(id, actor string) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		Actor:       actor,
		ID:          id,
		RequestedBy: r.RequestedBy,
		EventTypeID: r.EventTypeID,
		EventName:   r.EventName,
		Venue:       r.Venue,
		StartTime:   types.TimeString(r.StartTime),
		EndTime:     types.TimeString(r.EndTime),
		Amount:      r.Amount,
		DiscountPct: r.DiscountPct,
		Donation:    r.Donation,
		Resources:   r.Resources.ToDomain(),
		Archived:    r.Archived,
	}

	if r.Date != "" {
		date, err := domain.ParseDate(r.Date)
		if err != nil {
			return nil, domain.NewValidationError(domain.ReasonInvalidDate, "Invalid date, expected YYYY-MM-DD")
		}
		req.Date = date
	}
	return req, nil
}
