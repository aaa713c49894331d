package get_venue_availability

import (
	"sort"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

type interval struct {
	start, end int
}

// busyIntervals собирает занятые интервалы по времени начала.
// Брони с битым временем пропускаются, как и при проверке пересечений.
func busyIntervals(bookings []*domain.Booking) ([]BusyInterval, []interval) {
	busy := make([]BusyInterval, 0, len(bookings))
	ranges := make([]interval, 0, len(bookings))

	for _, b := range bookings {
		start, okStart := b.StartTime.Minutes()
		end, okEnd := b.EndTime.Minutes()
		if !okStart || !okEnd {
			continue
		}
		busy = append(busy, BusyInterval{
			BookingID: b.ID,
			EventName: b.Event.Name,
			StartTime: types.FromMinutes(start),
			EndTime:   types.FromMinutes(end),
		})
		ranges = append(ranges, interval{start: start, end: end})
	}

	sort.SliceStable(busy, func(i, j int) bool { return busy[i].StartTime < busy[j].StartTime })
	return busy, ranges
}

// generateSlots делит сутки на интервалы по slotMinutes.
// Последний интервал обрезается по 24:00.
// Слот занят, только если действительно пересекается с бронью: стык по границе свободен.
func generateSlots(slotMinutes int, busy []interval) []Slot {
	slots := make([]Slot, 0, types.EndOfDay/slotMinutes+1)

	for start := 0; start < types.EndOfDay; start += slotMinutes {
		end := start + slotMinutes
		if end > types.EndOfDay {
			end = types.EndOfDay
		}

		free := true
		for _, b := range busy {
			if types.IntervalsOverlap(start, end, b.start, b.end) {
				free = false
				break
			}
		}

		slots = append(slots, Slot{
			StartTime: types.FromMinutes(start),
			EndTime:   types.FromMinutes(end),
			Free:      free,
		})
	}
	return slots
}
