package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/usecase/find_conflict"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
}

// EventTypeRepository интерфейс каталога типов событий
type EventTypeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.EventType, error)
}

// ConflictChecker движок проверки пересечений (find_conflict)
type ConflictChecker interface {
	Execute(ctx context.Context, req *find_conflict.Request) (*find_conflict.Response, error)
}

// AuditRecorder запись в журнал аудита
type AuditRecorder interface {
	Record(ctx context.Context, action, actor, entityID string, meta map[string]interface{}) error
}

// OperationMetrics счётчик операций с бронированиями
type OperationMetrics interface {
	IncBookingOperation(operation, outcome string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
