package create_event_type

import (
	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/service/eventtypes/models"
)

// CreateEventTypeRequest HTTP request model
type CreateEventTypeRequest struct {
	Name             string                 `json:"name" validate:"required,max=100"`
	BaseAmount       float64                `json:"baseAmount" validate:"gte=0"`
	DefaultResources *handlers.ResourcesDTO `json:"defaultResources"`
}

func (r *CreateEventTypeRequest) ToServiceRequest() *models.CreateEventTypeRequest {
	req := &models.CreateEventTypeRequest{
		Name:       r.Name,
		BaseAmount: r.BaseAmount,
	}
	if res := r.DefaultResources.ToDomain(); res != nil {
		req.DefaultResources = *res
	}
	return req
}
