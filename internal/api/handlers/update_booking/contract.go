package update_booking

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	updateBooking "github.com/m04kA/GSO-BookingService/internal/usecase/update_booking"
)

type UpdateBookingUseCase interface {
	Execute(ctx context.Context, req *updateBooking.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
