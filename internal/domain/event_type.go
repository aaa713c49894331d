package domain

import (
	"strings"
	"time"
)

// EventType is a catalogued kind of event with its hourly rate
type EventType struct {
	ID               string
	Name             string
	BaseAmount       float64 // per hour
	DefaultResources Resources
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (e *EventType) Validate() error {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return NewValidationError(ReasonInvalidEventType, "Event type name is required")
	}
	if len(name) > MaxEventTypeLength {
		return NewValidationError(ReasonInvalidEventType, "Event type name is too long")
	}
	if e.BaseAmount < 0 {
		return NewValidationError(ReasonInvalidEventType, "Base amount must be a non-negative number")
	}
	return e.DefaultResources.Validate()
}

// AmountFor returns the default price of a booking from start to end.
func (e *EventType) AmountFor(hours float64) float64 {
	return DefaultAmount(e.BaseAmount, hours)
}

// DefaultEventTypes is the catalogue a fresh installation starts with
func DefaultEventTypes() []EventType {
	lightsOnly := Resources{Lights: true}
	return []EventType{
		{ID: "evt-1", Name: "VOLLEYBALL TRAINING", BaseAmount: 500, DefaultResources: lightsOnly},
		{ID: "evt-2", Name: "BASKETBALL TRAINING", BaseAmount: 600, DefaultResources: Resources{Lights: true, Sounds: true}},
		{ID: "evt-3", Name: "BADMINTON SESSION", BaseAmount: 450, DefaultResources: lightsOnly},
	}
}
