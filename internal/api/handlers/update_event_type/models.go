package update_event_type

import (
	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/service/eventtypes/models"
)

// UpdateEventTypeRequest HTTP request model; переданные поля заменяют прежние
type UpdateEventTypeRequest struct {
	Name             *string                `json:"name" validate:"omitempty,min=1,max=100"`
	BaseAmount       *float64               `json:"baseAmount" validate:"omitempty,gte=0"`
	DefaultResources *handlers.ResourcesDTO `json:"defaultResources"`
}

func (r *UpdateEventTypeRequest) ToServiceRequest() *models.UpdateEventTypeRequest {
	return &models.UpdateEventTypeRequest{
		Name:             r.Name,
		BaseAmount:       r.BaseAmount,
		DefaultResources: r.DefaultResources.ToDomain(),
	}
}
