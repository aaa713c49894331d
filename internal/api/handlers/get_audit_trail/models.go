package get_audit_trail

import (
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// AuditEntryResponse HTTP модель записи журнала
type AuditEntryResponse struct {
	ID       string                 `json:"id"`
	Action   string                 `json:"action"`
	Actor    string                 `json:"actor"`
	EntityID string                 `json:"entityId"`
	Meta     map[string]interface{} `json:"meta"`
	At       string                 `json:"at"`
}

func FromDomainList(entries []*domain.AuditEntry) []*AuditEntryResponse {
	result := make([]*AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, &AuditEntryResponse{
			ID:       e.ID,
			Action:   e.Action,
			Actor:    e.Actor,
			EntityID: e.EntityID,
			Meta:     e.Meta,
			At:       e.At.Format(time.RFC3339),
		})
	}
	return result
}
