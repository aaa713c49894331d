package bookings

import (
	"context"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/usecase/find_conflict"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	SetArchived(ctx context.Context, id string, archived bool, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// ConflictChecker движок проверки пересечений (нужен при разархивации)
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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
