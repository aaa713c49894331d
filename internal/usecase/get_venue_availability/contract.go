package get_venue_availability

import (
	"context"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindActiveByVenueAndDates(ctx context.Context, venue domain.Venue, dates []time.Time, ignoreID *string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
