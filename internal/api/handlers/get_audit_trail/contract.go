package get_audit_trail

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

type AuditService interface {
	List(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
