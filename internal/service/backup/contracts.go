package backup

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ReplaceAll(ctx context.Context, bookings []*domain.Booking) error
}

// EventTypeRepository каталог типов событий
type EventTypeRepository interface {
	List(ctx context.Context) ([]*domain.EventType, error)
	ReplaceAll(ctx context.Context, eventTypes []*domain.EventType) error
}

// AuditRecorder запись в журнал аудита
type AuditRecorder interface {
	Record(ctx context.Context, action, actor, entityID string, meta map[string]interface{}) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
