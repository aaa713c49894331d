package find_conflict

import (
	"context"
	"fmt"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

// UseCase проверка бронирования на корректность и пересечения по площадке
type UseCase struct {
	bookingRepo BookingRepository
	metrics     ConflictMetrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(bookingRepo BookingRepository, metrics ConflictMetrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute проверяет запрос. Ошибка возвращается только при сбое хранилища,
// отказ по бизнес-правилам приходит в Response.
//
// Порядок проверок: площадка, формат времени, порядок времени, пустые даты.
// Затем даты перебираются в порядке запроса, кандидаты в порядке хранилища,
// и первое пересечение побеждает.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	venue, rejection := checkPreconditions(req)
	if rejection != nil {
		return rejection, nil
	}

	if len(req.Dates) == 0 {
		return accepted(), nil
	}

	start, _ := req.StartTime.Minutes()
	end, _ := req.EndTime.Minutes()
	dates := domain.NormalizeDates(req.Dates)

	candidates, err := uc.bookingRepo.FindActiveByVenueAndDates(ctx, venue, dates, req.IgnoreID)
	if err != nil {
		uc.logger.Error("FindConflict: failed to load bookings for venue=%s: %v", venue, err)
		return nil, fmt.Errorf("%w: FindActiveByVenueAndDates: %w", ErrInternal, err)
	}

	for _, date := range dates {
		for _, candidate := range candidates {
			if req.IgnoreID != nil && candidate.ID == *req.IgnoreID {
				continue
			}
			if candidate.Archived || !candidate.OccursOn(date) {
				continue
			}

			candidateStart, okStart := candidate.StartTime.Minutes()
			candidateEnd, okEnd := candidate.EndTime.Minutes()
			if !okStart || !okEnd {
				uc.logger.Warn("FindConflict: skip booking id=%s with unparsable times %q-%q",
					candidate.ID, candidate.StartTime, candidate.EndTime)
				continue
			}

			if !types.IntervalsOverlap(start, end, candidateStart, candidateEnd) {
				continue
			}

			conflict := &domain.Conflict{
				BookingID: candidate.ID,
				Date:      date,
				Venue:     venue,
				StartTime: candidate.StartTime,
				EndTime:   candidate.EndTime,
			}
			if uc.metrics != nil {
				uc.metrics.IncConflict(string(venue))
			}
			uc.logger.Info("FindConflict: venue=%s date=%s %s-%s overlaps booking id=%s",
				venue, domain.FormatDate(date), req.StartTime, req.EndTime, candidate.ID)

			return &Response{
				Reason:   domain.ReasonScheduleConflict,
				Message:  conflict.Message(),
				Conflict: conflict,
			}, nil
		}
	}

	return accepted(), nil
}

func checkPreconditions(req *Request) (domain.Venue, *Response) {
	venue, ok := domain.ParseVenue(string(req.Venue))
	if !ok {
		return "", rejected(domain.ReasonVenueRequired, "Venue is required")
	}

	start, okStart := req.StartTime.Minutes()
	end, okEnd := req.EndTime.Minutes()
	if !okStart || !okEnd {
		return "", rejected(domain.ReasonInvalidTimeFormat, "Invalid time format")
	}

	if start >= end {
		return "", rejected(domain.ReasonInvalidTimeRange, "End time must be after start time")
	}

	return venue, nil
}
