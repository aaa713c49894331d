package models

import "github.com/m04kA/GSO-BookingService/internal/domain"

// CreateEventTypeRequest запрос на добавление типа события
type CreateEventTypeRequest struct {
	Name             string
	BaseAmount       float64
	DefaultResources domain.Resources
}

// UpdateEventTypeRequest частичное изменение: nil оставляет прежнее значение
type UpdateEventTypeRequest struct {
	Name             *string
	BaseAmount       *float64
	DefaultResources *domain.Resources
}

// Apply переносит заданные поля на et
func (r *UpdateEventTypeRequest) Apply(et *domain.EventType) {
	if r.Name != nil {
		et.Name = *r.Name
	}
	if r.BaseAmount != nil {
		et.BaseAmount = *r.BaseAmount
	}
	if r.DefaultResources != nil {
		et.DefaultResources = *r.DefaultResources
	}
}
