package backup

import (
	"fmt"
	"sort"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

func invalid(format string, v ...interface{}) error {
	return domain.NewValidationError(domain.ReasonInvalidBackup, fmt.Sprintf(format, v...))
}

// validateBackup проверяет инварианты всего снимка до записи:
// уникальность ID, ссылки на типы событий, поля броней и отсутствие пересечений.
// Суммы пересчитываются на месте.
func validateBackup(b *domain.Backup) error {
	eventTypeIDs := make(map[string]struct{}, len(b.EventTypes))
	for i := range b.EventTypes {
		et := &b.EventTypes[i]
		if et.ID == "" {
			return invalid("Event type #%d has no id", i+1)
		}
		if _, dup := eventTypeIDs[et.ID]; dup {
			return invalid("Duplicate event type id %s", et.ID)
		}
		if err := et.Validate(); err != nil {
			return invalid("Event type %s: %v", et.ID, err)
		}
		eventTypeIDs[et.ID] = struct{}{}
	}

	bookingIDs := make(map[string]struct{}, len(b.Bookings))
	for i := range b.Bookings {
		bk := &b.Bookings[i]
		if bk.ID == "" {
			return invalid("Booking #%d has no id", i+1)
		}
		if _, dup := bookingIDs[bk.ID]; dup {
			return invalid("Duplicate booking id %s", bk.ID)
		}
		bookingIDs[bk.ID] = struct{}{}

		if bk.Event.IsKnown() {
			if _, ok := eventTypeIDs[bk.Event.TypeID]; !ok {
				return invalid("Booking %s references unknown event type %s", bk.ID, bk.Event.TypeID)
			}
		}

		bk.Dates = domain.NormalizeDates(bk.Dates)
		bk.StartTime = bk.StartTime.Normalize()
		bk.EndTime = bk.EndTime.Normalize()
		bk.ApplyPricing()
		if err := bk.Validate(); err != nil {
			return invalid("Booking %s: %v", bk.ID, err)
		}
	}

	return findOverlap(b.Bookings)
}

type slotKey struct {
	venue domain.Venue
	date  string
}

type slot struct {
	booking    *domain.Booking
	start, end int
}

// findOverlap ищет пересечение активных броней одной площадки в один день
func findOverlap(bookings []domain.Booking) error {
	slots := make(map[slotKey][]slot)
	keys := make([]slotKey, 0)

	for i := range bookings {
		bk := &bookings[i]
		if !bk.IsActive() {
			continue
		}
		start, _ := bk.StartTime.Minutes()
		end, _ := bk.EndTime.Minutes()
		for _, d := range bk.Dates {
			key := slotKey{venue: bk.Venue, date: domain.FormatDate(d)}
			if _, seen := slots[key]; !seen {
				keys = append(keys, key)
			}
			slots[key] = append(slots[key], slot{booking: bk, start: start, end: end})
		}
	}

	for _, key := range keys {
		group := slots[key]
		sort.SliceStable(group, func(i, j int) bool { return group[i].start < group[j].start })
		for i := 1; i < len(group); i++ {
			prev, cur := group[i-1], group[i]
			if types.IntervalsOverlap(prev.start, prev.end, cur.start, cur.end) {
				date, _ := domain.ParseDate(key.date)
				return domain.NewConflictError(domain.Conflict{
					BookingID: prev.booking.ID,
					Date:      date,
					Venue:     key.venue,
					StartTime: prev.booking.StartTime,
					EndTime:   prev.booking.EndTime,
				})
			}
		}
	}
	return nil
}
