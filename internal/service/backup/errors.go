package backup

import (
	"fmt"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = fmt.Errorf("backup: internal error: %w", domain.ErrPersistence)
