// Package memory is the in-process storage driver. It mirrors the Postgres
// repositories, including their sentinel errors, and is used by tests and
// by deployments with storage.driver = "memory".
package memory

import (
	"context"
	"sync"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// Store holds every collection. Transactional blocks and standalone writes
// are serialized by txMu; data access is guarded by mu.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	bookings   map[string]*domain.Booking
	order      []string
	eventTypes map[string]*domain.EventType
	audit      []*domain.AuditEntry
}

func NewStore() *Store {
	return &Store{
		bookings:   make(map[string]*domain.Booking),
		eventTypes: make(map[string]*domain.EventType),
	}
}

// SeedEventTypes inserts the default catalogue.
func (s *Store) SeedEventTypes(eventTypes []domain.EventType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range eventTypes {
		et := eventTypes[i]
		s.eventTypes[et.ID] = &et
	}
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

func (s *Store) EventTypes() *EventTypeRepository {
	return &EventTypeRepository{store: s}
}

func (s *Store) Audit() *AuditRepository {
	return &AuditRepository{store: s}
}

func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

type txKey struct{}

func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, true)
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// write runs fn under the data lock. Outside a transaction it also takes
// txMu so a standalone write cannot interleave with a running transaction.
func (s *Store) write(ctx context.Context, fn func() error) error {
	if !inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Store) read(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

type snapshot struct {
	bookings   map[string]*domain.Booking
	order      []string
	eventTypes map[string]*domain.EventType
	audit      []*domain.AuditEntry
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		bookings:   make(map[string]*domain.Booking, len(s.bookings)),
		order:      append([]string(nil), s.order...),
		eventTypes: make(map[string]*domain.EventType, len(s.eventTypes)),
		audit:      append([]*domain.AuditEntry(nil), s.audit...),
	}
	for id, b := range s.bookings {
		snap.bookings[id] = b.Clone()
	}
	for id, et := range s.eventTypes {
		c := *et
		snap.eventTypes[id] = &c
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = snap.bookings
	s.order = snap.order
	s.eventTypes = snap.eventTypes
	s.audit = snap.audit
}
