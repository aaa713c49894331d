package find_conflict

import (
	"fmt"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// ErrInternal возвращается при ошибке хранилища
var ErrInternal = fmt.Errorf("find_conflict: internal error: %w", domain.ErrPersistence)
