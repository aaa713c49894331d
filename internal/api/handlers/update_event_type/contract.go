package update_event_type

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/service/eventtypes/models"
)

type EventTypeService interface {
	Update(ctx context.Context, id, actor string, req *models.UpdateEventTypeRequest) (*domain.EventType, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
