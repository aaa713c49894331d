package get_venue_availability

import (
	"net/url"
	"strconv"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	venueAvailability "github.com/m04kA/GSO-BookingService/internal/usecase/get_venue_availability"
)

// AvailabilityResponse HTTP модель занятости площадки
type AvailabilityResponse struct {
	Venue string         `json:"venue"`
	Date  string         `json:"date"`
	Busy  []BusyResponse `json:"busy"`
	Slots []SlotResponse `json:"slots"`
}

type BusyResponse struct {
	BookingID string `json:"bookingId"`
	EventName string `json:"eventName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Free      bool   `json:"free"`
}

// ToUseCaseRequest собирает запрос из пути и query параметров date, slot
func ToUseCaseRequest(venue string, query url.Values) (*venueAvailability.Request, error) {
	req := &venueAvailability.Request{Venue: venue}

	if raw := query.Get("date"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			return nil, domain.NewValidationError(domain.ReasonInvalidDate, "Invalid date, expected YYYY-MM-DD")
		}
		req.Date = date
	}

	if raw := query.Get("slot"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domain.NewValidationError(domain.ReasonInvalidSlot, "Slot length must be a number of minutes")
		}
		req.SlotMinutes = minutes
	}

	return req, nil
}

func FromUseCaseResponse(resp *venueAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		Venue: resp.Venue.String(),
		Date:  domain.FormatDate(resp.Date),
		Busy:  make([]BusyResponse, 0, len(resp.Busy)),
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, b := range resp.Busy {
		result.Busy = append(result.Busy, BusyResponse{
			BookingID: b.BookingID,
			EventName: b.EventName,
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
		})
	}
	for _, s := range resp.Slots {
		result.Slots = append(result.Slots, SlotResponse{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Free:      s.Free,
		})
	}
	return result
}
