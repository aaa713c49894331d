package create_booking

import (
	"fmt"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = fmt.Errorf("create_booking: internal error: %w", domain.ErrPersistence)
