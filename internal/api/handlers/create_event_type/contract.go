package create_event_type

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/service/eventtypes/models"
)

type EventTypeService interface {
	Create(ctx context.Context, actor string, req *models.CreateEventTypeRequest) (*domain.EventType, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
