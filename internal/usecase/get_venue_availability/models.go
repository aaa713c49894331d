package get_venue_availability

import (
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

const (
	DefaultSlotMinutes = 60
	MinSlotMinutes     = 15
	MaxSlotMinutes     = 12 * 60
)

// Request запрос расписания площадки на день
type Request struct {
	Venue       string
	Date        time.Time
	SlotMinutes int // 0 - DefaultSlotMinutes
}

// Response занятость площадки на дату
type Response struct {
	Venue domain.Venue
	Date  time.Time
	Busy  []BusyInterval
	Slots []Slot
}

// BusyInterval активная бронь на эту дату
type BusyInterval struct {
	BookingID string
	EventName string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Slot интервал сетки дня
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Free      bool
}
