package eventtypes

import (
	"fmt"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

var (
	// ErrEventTypeNotFound возвращается, когда тип события не найден
	ErrEventTypeNotFound = fmt.Errorf("eventtypes: %w", domain.ErrEventTypeNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("eventtypes: internal error: %w", domain.ErrPersistence)
)
