package create_booking

import (
	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/domain"
	createBooking "github.com/m04kA/GSO-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model.
// durationHours, discountValue и finalAmount клиент присылает вместе с формой,
// они принимаются, но не читаются: сервер считает их сам.
type CreateBookingRequest struct {
	RequestedBy string                 `json:"requestedBy" validate:"max=200"`
	EventTypeID *string                `json:"eventTypeId"`
	EventName   string                 `json:"eventName" validate:"max=200"`
	Venue       string                 `json:"venue"`
	Date        string                 `json:"date"`  // "2025-06-10", если dates не передан
	Dates       []string               `json:"dates"` // первая дата - основная
	StartTime   string                 `json:"startTime"`
	EndTime     string                 `json:"endTime"`
	Amount      *float64               `json:"amount"`
	DiscountPct float64                `json:"discountPct"`
	Donation    float64                `json:"donation"`
	Resources   *handlers.ResourcesDTO `json:"resources"`

	DurationHours *float64 `json:"durationHours"`
	DiscountValue *float64 `json:"discountValue"`
	FinalAmount   *float64 `json:"finalAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor string) (*createBooking.Request, error) {
	rawDates := r.Dates
	if len(rawDates) == 0 && r.Date != "" {
		rawDates = []string{r.Date}
	}

	dates, err := domain.ParseDates(rawDates)
	if err != nil {
		return nil, domain.NewValidationError(domain.ReasonInvalidDate, "Invalid date, expected YYYY-MM-DD")
	}

	return &createBooking.Request{
		Actor:       actor,
		RequestedBy: r.RequestedBy,
		EventTypeID: r.EventTypeID,
		EventName:   r.EventName,
		Venue:       r.Venue,
		Dates:       dates,
		StartTime:   types.TimeString(r.StartTime),
		EndTime:     types.TimeString(r.EndTime),
		Amount:      r.Amount,
		DiscountPct: r.DiscountPct,
		Donation:    r.Donation,
		Resources:   r.Resources.ToDomain(),
	}, nil
}
