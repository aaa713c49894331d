package eventtypes

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// Repository каталог типов событий (Postgres, память или кэш поверх них)
type Repository interface {
	List(ctx context.Context) ([]*domain.EventType, error)
	GetByID(ctx context.Context, id string) (*domain.EventType, error)
	Create(ctx context.Context, et *domain.EventType) error
	Update(ctx context.Context, et *domain.EventType) error
	Delete(ctx context.Context, id string) error
}

// AuditRecorder запись в журнал аудита
type AuditRecorder interface {
	Record(ctx context.Context, action, actor, entityID string, meta map[string]interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
