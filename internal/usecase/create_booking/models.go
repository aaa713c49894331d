package create_booking

import (
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования.
// DiscountValue и FinalAmount не принимаются: их считает сервер.
type Request struct {
	Actor       string  // кто выполняет операцию (для аудита)
	RequestedBy string  // заявитель
	EventTypeID *string // ссылка на каталог; приоритетнее EventName
	EventName   string  // произвольное название, если тип не выбран
	Venue       string
	Dates       []time.Time // хотя бы одна; дубликаты отбрасываются, первая - основная
	StartTime   types.TimeString
	EndTime     types.TimeString
	Amount      *float64 // nil или 0 - цена по тарифу типа события
	DiscountPct float64
	Donation    float64
	Resources   *domain.Resources // nil - ресурсы по умолчанию для типа события
}
