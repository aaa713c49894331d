package find_conflict

import (
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

// Request запрос на проверку пересечений
type Request struct {
	Venue     domain.Venue
	Dates     []time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	IgnoreID  *string // ID бронирования, которое не считается конфликтом (при обновлении)
}

// Response результат проверки. При OK=false заполнены Reason и Message,
// а при пересечении ещё и Conflict.
type Response struct {
	OK       bool
	Reason   string
	Message  string
	Conflict *domain.Conflict
}

// Err преобразует отказ в ошибку доменной таксономии
func (r *Response) Err() error {
	if r == nil || r.OK {
		return nil
	}
	if r.Conflict != nil {
		return domain.NewConflictError(*r.Conflict)
	}
	return domain.NewValidationError(r.Reason, r.Message)
}

func accepted() *Response {
	return &Response{OK: true}
}

func rejected(reason, message string) *Response {
	return &Response{Reason: reason, Message: message}
}
