package archive_booking

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

type BookingService interface {
	ToggleArchive(ctx context.Context, id, actor string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
