package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GSO-BookingService/pkg/types"
)

var (
	ErrInvalidInput      = errors.New("domain: invalid input")
	ErrScheduleConflict  = errors.New("domain: schedule conflict")
	ErrBookingNotFound   = errors.New("domain: booking not found")
	ErrEventTypeNotFound = errors.New("domain: event type not found")
	ErrPersistence       = errors.New("domain: persistence failure")
)

// ValidationError is a rejected input with a machine-readable reason.
type ValidationError struct {
	Reason  string
	Message string
}

func NewValidationError(reason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Conflict identifies the existing booking that blocks a request
type Conflict struct {
	BookingID string
	Date      time.Time
	Venue     Venue
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Message is the user-facing conflict description.
func (c Conflict) Message() string {
	return fmt.Sprintf("Schedule conflict: %s already reserved on %s (%s - %s).",
		c.Venue, FormatDate(c.Date), c.StartTime, c.EndTime)
}

// ConflictError is returned when a write would double-book a venue.
type ConflictError struct {
	Conflict Conflict
}

func NewConflictError(c Conflict) *ConflictError {
	return &ConflictError{Conflict: c}
}

func (e *ConflictError) Error() string {
	return e.Conflict.Message()
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}
