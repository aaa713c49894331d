package audit

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// Repository журнал аудита
type Repository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

// Publisher внешний получатель событий аудита (Kafka)
type Publisher interface {
	Publish(ctx context.Context, entry *domain.AuditEntry) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
