package update_booking

import (
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

// Request модель запроса на изменение бронирования.
// Расписание и заявитель передаются целиком, остальные поля опциональны:
// nil оставляет значение из сохранённой записи.
type Request struct {
	Actor string
	ID    string

	RequestedBy string
	EventTypeID *string // непустой - событие из каталога
	EventName   string  // произвольное событие, если EventTypeID пуст
	Venue       string
	Date        time.Time // изменение заменяет весь набор дат одной датой
	StartTime   types.TimeString
	EndTime     types.TimeString

	Amount      *float64 // nil - тариф типа события или прежняя сумма
	DiscountPct *float64
	Donation    *float64
	Resources   *domain.Resources
	Archived    *bool
}
