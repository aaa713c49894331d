package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GSO-BookingService/internal/infra/storage/booking"
)

type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.store.write(ctx, func() error {
		if _, exists := r.store.bookings[booking.ID]; exists {
			return fmt.Errorf("%w: Create - duplicate id %s", bookingRepo.ErrExecQuery, booking.ID)
		}
		r.store.bookings[booking.ID] = booking.Clone()
		r.store.order = append(r.store.order, booking.ID)
		return nil
	})
}

func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	return r.store.write(ctx, func() error {
		existing, ok := r.store.bookings[booking.ID]
		if !ok {
			return bookingRepo.ErrBookingNotFound
		}
		updated := booking.Clone()
		updated.CreatedAt = existing.CreatedAt
		r.store.bookings[booking.ID] = updated
		return nil
	})
}

func (r *BookingRepository) SetArchived(ctx context.Context, id string, archived bool, updatedAt time.Time) error {
	return r.store.write(ctx, func() error {
		b, ok := r.store.bookings[id]
		if !ok {
			return bookingRepo.ErrBookingNotFound
		}
		b.Archived = archived
		b.UpdatedAt = updatedAt
		return nil
	})
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	var found *domain.Booking
	r.store.read(func() {
		if b, ok := r.store.bookings[id]; ok {
			found = b.Clone()
		}
	})
	if found == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return found, nil
}

func (r *BookingRepository) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	r.store.read(func() {
		for _, id := range r.store.order {
			if b := r.store.bookings[id]; filter.Matches(b) {
				result = append(result, b.Clone())
			}
		}
	})

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if filter.Sort == domain.SortAsc {
			return bookingLess(a, b)
		}
		return bookingLess(b, a)
	})

	return result, nil
}

// FindActiveByVenueAndDates returns active bookings of venue sharing at least
// one date, in insertion order.
func (r *BookingRepository) FindActiveByVenueAndDates(_ context.Context, venue domain.Venue, dates []time.Time, ignoreID *string) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	if len(dates) == 0 {
		return result, nil
	}

	r.store.read(func() {
		for _, id := range r.store.order {
			b := r.store.bookings[id]
			if b.Archived || b.Venue != venue {
				continue
			}
			if ignoreID != nil && b.ID == *ignoreID {
				continue
			}
			for _, d := range dates {
				if b.OccursOn(d) {
					result = append(result, b.Clone())
					break
				}
			}
		}
	})

	return result, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return r.store.write(ctx, func() error {
		if _, ok := r.store.bookings[id]; !ok {
			return bookingRepo.ErrBookingNotFound
		}
		delete(r.store.bookings, id)
		for i, oid := range r.store.order {
			if oid == id {
				r.store.order = append(r.store.order[:i], r.store.order[i+1:]...)
				break
			}
		}
		return nil
	})
}

func (r *BookingRepository) ReplaceAll(ctx context.Context, bookings []*domain.Booking) error {
	return r.store.write(ctx, func() error {
		r.store.bookings = make(map[string]*domain.Booking, len(bookings))
		r.store.order = make([]string, 0, len(bookings))
		for _, b := range bookings {
			r.store.bookings[b.ID] = b.Clone()
			r.store.order = append(r.store.order, b.ID)
		}
		return nil
	})
}

func bookingLess(a, b *domain.Booking) bool {
	if !a.PrimaryDate().Equal(b.PrimaryDate()) {
		return a.PrimaryDate().Before(b.PrimaryDate())
	}
	if a.StartTime != b.StartTime {
		return a.StartTime < b.StartTime
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
