package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("bookings: %w", domain.ErrBookingNotFound)

	// ErrNotArchived возвращается при удалении активной брони, если политика это запрещает
	ErrNotArchived = errors.New("bookings: only archived bookings can be deleted")

	// ErrInvalidInput возвращается при некорректных параметрах фильтра
	ErrInvalidInput = fmt.Errorf("bookings: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("bookings: internal error: %w", domain.ErrPersistence)
)
