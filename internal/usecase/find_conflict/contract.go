package find_conflict

import (
	"context"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindActiveByVenueAndDates(ctx context.Context, venue domain.Venue, dates []time.Time, ignoreID *string) ([]*domain.Booking, error)
}

// ConflictMetrics счётчик отклонённых из-за пересечения запросов
type ConflictMetrics interface {
	IncConflict(venue string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
