package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// ListBookingsRequest параметры выборки бронирований.
// Пустые строки означают отсутствие фильтра.
type ListBookingsRequest struct {
	Venue  string
	Status string // active | archived | all
	From   *time.Time
	To     *time.Time
	Search string
	Sort   string // asc | desc
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		From:   r.From,
		To:     r.To,
		Search: strings.TrimSpace(r.Search),
	}

	if strings.TrimSpace(r.Venue) != "" {
		venue, ok := domain.ParseVenue(r.Venue)
		if !ok {
			return filter, fmt.Errorf("unknown venue %q", r.Venue)
		}
		filter.Venue = &venue
	}

	switch status := domain.BookingStatusFilter(strings.ToLower(strings.TrimSpace(r.Status))); status {
	case "":
		filter.Status = domain.StatusFilterActive
	case domain.StatusFilterActive, domain.StatusFilterArchived, domain.StatusFilterAll:
		filter.Status = status
	default:
		return filter, fmt.Errorf("unknown status %q", r.Status)
	}

	switch sort := domain.SortOrder(strings.ToLower(strings.TrimSpace(r.Sort))); sort {
	case "":
		filter.Sort = domain.SortDesc
	case domain.SortAsc, domain.SortDesc:
		filter.Sort = sort
	default:
		return filter, fmt.Errorf("unknown sort order %q", r.Sort)
	}

	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return filter, fmt.Errorf("period end %s is before start %s",
			domain.FormatDate(*r.To), domain.FormatDate(*r.From))
	}

	return filter, nil
}
