package list_bookings

import (
	"net/url"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр из query параметров
// venue, status, from, to, search, sort
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		Venue:  query.Get("venue"),
		Status: query.Get("status"),
		Search: query.Get("search"),
		Sort:   query.Get("sort"),
	}

	var err error
	if req.From, err = parseOptionalDate(query.Get("from")); err != nil {
		return nil, err
	}
	if req.To, err = parseOptionalDate(query.Get("to")); err != nil {
		return nil, err
	}
	return req, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
