package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	eventTypeRepo "github.com/m04kA/GSO-BookingService/internal/infra/storage/eventtype"
)

type EventTypeRepository struct {
	store *Store
}

func (r *EventTypeRepository) List(_ context.Context) ([]*domain.EventType, error) {
	result := make([]*domain.EventType, 0)
	r.store.read(func() {
		for _, et := range r.store.eventTypes {
			c := *et
			result = append(result, &c)
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *EventTypeRepository) GetByID(_ context.Context, id string) (*domain.EventType, error) {
	var found *domain.EventType
	r.store.read(func() {
		if et, ok := r.store.eventTypes[id]; ok {
			c := *et
			found = &c
		}
	})
	if found == nil {
		return nil, eventTypeRepo.ErrEventTypeNotFound
	}
	return found, nil
}

func (r *EventTypeRepository) Create(ctx context.Context, et *domain.EventType) error {
	return r.store.write(ctx, func() error {
		if _, exists := r.store.eventTypes[et.ID]; exists {
			return fmt.Errorf("%w: Create - duplicate id %s", eventTypeRepo.ErrExecQuery, et.ID)
		}
		c := *et
		r.store.eventTypes[et.ID] = &c
		return nil
	})
}

func (r *EventTypeRepository) Update(ctx context.Context, et *domain.EventType) error {
	return r.store.write(ctx, func() error {
		existing, ok := r.store.eventTypes[et.ID]
		if !ok {
			return eventTypeRepo.ErrEventTypeNotFound
		}
		c := *et
		c.CreatedAt = existing.CreatedAt
		r.store.eventTypes[et.ID] = &c
		return nil
	})
}

// Delete removes the event type; bookings referencing it keep their event name
// and become custom events, like ON DELETE SET NULL in Postgres.
func (r *EventTypeRepository) Delete(ctx context.Context, id string) error {
	return r.store.write(ctx, func() error {
		if _, ok := r.store.eventTypes[id]; !ok {
			return eventTypeRepo.ErrEventTypeNotFound
		}
		delete(r.store.eventTypes, id)
		for _, b := range r.store.bookings {
			if b.Event.TypeID == id {
				b.Event = domain.CustomEvent(b.Event.Name)
			}
		}
		return nil
	})
}

func (r *EventTypeRepository) ReplaceAll(ctx context.Context, eventTypes []*domain.EventType) error {
	return r.store.write(ctx, func() error {
		r.store.eventTypes = make(map[string]*domain.EventType, len(eventTypes))
		for _, et := range eventTypes {
			c := *et
			r.store.eventTypes[et.ID] = &c
		}
		return nil
	})
}
