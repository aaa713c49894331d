package audit

import (
	"fmt"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = fmt.Errorf("audit: internal error: %w", domain.ErrPersistence)
