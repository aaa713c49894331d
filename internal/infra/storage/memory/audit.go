package memory

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

type AuditRepository struct {
	store *Store
}

func (r *AuditRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	return r.store.write(ctx, func() error {
		c := *entry
		r.store.audit = append(r.store.audit, &c)
		return nil
	})
}

// List returns up to limit entries, newest first.
func (r *AuditRepository) List(_ context.Context, limit int) ([]*domain.AuditEntry, error) {
	result := make([]*domain.AuditEntry, 0, limit)
	r.store.read(func() {
		for i := len(r.store.audit) - 1; i >= 0 && len(result) < limit; i-- {
			c := *r.store.audit[i]
			result = append(result, &c)
		}
	})
	return result, nil
}
