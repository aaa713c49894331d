package update_booking

import (
	"fmt"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("update_booking: %w", domain.ErrBookingNotFound)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("update_booking: internal error: %w", domain.ErrPersistence)
)
