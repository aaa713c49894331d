package list_bookings

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, req *models.ListBookingsRequest) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
