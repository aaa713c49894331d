package get_venue_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// UseCase use case для получения занятости площадки на день
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает активные брони площадки на дату и сетку свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetVenueAvailability: venue=%q, date=%s, slot=%d",
		req.Venue, domain.FormatDate(req.Date), req.SlotMinutes)

	// 1. Валидация входных данных
	venue, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetVenueAvailability: validation failed: %v", err)
		return nil, err
	}

	slotMinutes := req.SlotMinutes
	if slotMinutes == 0 {
		slotMinutes = DefaultSlotMinutes
	}
	date := domain.TruncateDate(req.Date)

	// 2. Активные брони площадки на эту дату
	bookings, err := uc.bookingRepo.FindActiveByVenueAndDates(ctx, venue, []time.Time{date}, nil)
	if err != nil {
		uc.logger.Error("GetVenueAvailability: failed to get bookings for venue=%s: %v", venue, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() && b.OccursOn(date) {
			active = append(active, b)
		}
	}

	// 3. Занятые интервалы и сетка дня
	busy, ranges := busyIntervals(active)
	slots := generateSlots(slotMinutes, ranges)

	uc.logger.Info("GetVenueAvailability: venue=%s, date=%s: %d bookings, %d slots",
		venue, domain.FormatDate(date), len(busy), len(slots))

	return &Response{
		Venue: venue,
		Date:  date,
		Busy:  busy,
		Slots: slots,
	}, nil
}
