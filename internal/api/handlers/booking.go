package handlers

import (
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// ResourcesDTO набор ресурсов в JSON
type ResourcesDTO struct {
	Chairs int  `json:"chairs"`
	Tables int  `json:"tables"`
	Aircon bool `json:"aircon"`
	Lights bool `json:"lights"`
	Sounds bool `json:"sounds"`
	LED    bool `json:"led"`
}

func (r *ResourcesDTO) ToDomain() *domain.Resources {
	if r == nil {
		return nil
	}
	return &domain.Resources{
		Chairs: r.Chairs,
		Tables: r.Tables,
		Aircon: r.Aircon,
		Lights: r.Lights,
		Sounds: r.Sounds,
		LED:    r.LED,
	}
}

func FromDomainResources(r domain.Resources) ResourcesDTO {
	return ResourcesDTO{
		Chairs: r.Chairs,
		Tables: r.Tables,
		Aircon: r.Aircon,
		Lights: r.Lights,
		Sounds: r.Sounds,
		LED:    r.LED,
	}
}

// BookingResponse HTTP модель брони
type BookingResponse struct {
	ID            string       `json:"id"`
	RequestedBy   string       `json:"requestedBy"`
	EventTypeID   *string      `json:"eventTypeId"`
	EventName     string       `json:"eventName"`
	Venue         string       `json:"venue"`
	Date          string       `json:"date"`
	Dates         []string     `json:"dates"`
	StartTime     string       `json:"startTime"`
	EndTime       string       `json:"endTime"`
	DurationHours float64      `json:"durationHours"`
	Amount        float64      `json:"amount"`
	DiscountPct   float64      `json:"discountPct"`
	DiscountValue float64      `json:"discountValue"`
	FinalAmount   float64      `json:"finalAmount"`
	Donation      float64      `json:"donation"`
	Resources     ResourcesDTO `json:"resources"`
	Archived      bool         `json:"archived"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
}

func FromDomainBooking(b *domain.Booking) *BookingResponse {
	var eventTypeID *string
	if b.Event.IsKnown() {
		id := b.Event.TypeID
		eventTypeID = &id
	}

	return &BookingResponse{
		ID:            b.ID,
		RequestedBy:   b.RequestedBy,
		EventTypeID:   eventTypeID,
		EventName:     b.Event.Name,
		Venue:         string(b.Venue),
		Date:          domain.FormatDate(b.PrimaryDate()),
		Dates:         domain.FormatDates(b.Dates),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		DurationHours: b.DurationHours(),
		Amount:        b.Amount,
		DiscountPct:   b.DiscountPct,
		DiscountValue: b.DiscountValue,
		FinalAmount:   b.FinalAmount,
		Donation:      b.Donation,
		Resources:     FromDomainResources(b.Resources),
		Archived:      b.Archived,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// ConflictResponse описание брони, с которой пересекается запрос
type ConflictResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Venue     string `json:"venue"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func FromDomainConflict(c domain.Conflict) *ConflictResponse {
	return &ConflictResponse{
		ID:        c.BookingID,
		Date:      domain.FormatDate(c.Date),
		Venue:     string(c.Venue),
		StartTime: c.StartTime.String(),
		EndTime:   c.EndTime.String(),
	}
}

// EventTypeResponse HTTP модель типа события
type EventTypeResponse struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	BaseAmount       float64      `json:"baseAmount"`
	DefaultResources ResourcesDTO `json:"defaultResources"`
}

func FromDomainEventType(et *domain.EventType) *EventTypeResponse {
	return &EventTypeResponse{
		ID:               et.ID,
		Name:             et.Name,
		BaseAmount:       et.BaseAmount,
		DefaultResources: FromDomainResources(et.DefaultResources),
	}
}
