package get_venue_availability

import (
	"fmt"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = fmt.Errorf("get_venue_availability: internal error: %w", domain.ErrPersistence)
