package restore_backup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/api/middleware"
	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/infra/storage/memory"
	auditService "github.com/m04kA/GSO-BookingService/internal/service/audit"
	"github.com/m04kA/GSO-BookingService/internal/service/backup"
	"github.com/m04kA/GSO-BookingService/pkg/logger"
)

const validBackup = `{
	"eventTypes": [{"id": "evt-7", "name": "ZUMBA", "baseAmount": 300, "defaultResources": {"sounds": true}}],
	"bookings": [
		{
			"id": "bk-1", "requestedBy": "Barangay 1", "eventTypeId": "evt-7", "eventName": "ZUMBA",
			"venue": "Unlad Gymnasium", "dates": ["2025-06-10"], "startTime": "8:00", "endTime": "10:00",
			"amount": 600, "discountPct": 50, "finalAmount": 1, "donation": 0,
			"resources": {"chairs": 10}, "archived": false
		},
		{
			"id": "bk-2", "requestedBy": "Barangay 2", "eventTypeId": null, "eventName": "Assembly",
			"venue": "Unlad Gymnasium", "dates": ["2025-06-10"], "startTime": "10:00", "endTime": "12:00",
			"amount": 800, "discountPct": 0, "finalAmount": 800, "donation": 0,
			"resources": {}, "archived": false
		}
	],
	"exportedAt": "2025-06-01T00:00:00Z"
}`

func setup(t *testing.T) (*Handler, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SeedEventTypes(domain.DefaultEventTypes())
	log := logger.NewNop()
	audit := auditService.NewService(store.Audit(), nil, log)
	svc := backup.NewService(store.Bookings(), store.EventTypes(), audit, store.TxManager(), log)
	return NewHandler(svc, log), store
}

func restore(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/restore", strings.NewReader(body))
	req = req.WithContext(middleware.WithUser(req.Context(), "admin"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ReplacesData(t *testing.T) {
	h, store := setup(t)

	rec := restore(h, validBackup)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	eventTypes, err := store.EventTypes().List(context.Background())
	require.NoError(t, err)
	require.Len(t, eventTypes, 1)
	assert.Equal(t, "evt-7", eventTypes[0].ID)

	bk, err := store.Bookings().GetByID(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Equal(t, domain.KnownEvent("evt-7", "ZUMBA"), bk.Event)
	assert.Equal(t, "08:00", bk.StartTime.String())
	assert.Equal(t, float64(300), bk.FinalAmount)

	entries, err := store.Audit().List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AuditBackupRestored, entries[0].Action)
	assert.Equal(t, "admin", entries[0].Actor)
}

func TestHandle_OverlapRejected(t *testing.T) {
	h, store := setup(t)

	body := strings.Replace(validBackup, `"startTime": "10:00"`, `"startTime": "09:00"`, 1)
	rec := restore(h, body)
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.ReasonScheduleConflict, resp.Reason)

	// данные не тронуты
	eventTypes, err := store.EventTypes().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, eventTypes, len(domain.DefaultEventTypes()))
}

func TestHandle_InvalidPayload(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		reason string
	}{
		{"missing booking id", strings.Replace(validBackup, `"id": "bk-2", `, ``, 1), http.StatusBadRequest, ""},
		{"bad date", strings.Replace(validBackup, `["2025-06-10"], "startTime": "8:00"`, `["10.06.2025"], "startTime": "8:00"`, 1), http.StatusBadRequest, domain.ReasonInvalidBackup},
		{"unknown event type", strings.Replace(validBackup, `"eventTypeId": "evt-7"`, `"eventTypeId": "evt-404"`, 1), http.StatusBadRequest, domain.ReasonInvalidBackup},
		{"unknown venue", strings.Replace(validBackup, `"venue": "Unlad Gymnasium", "dates": ["2025-06-10"], "startTime": "10:00"`, `"venue": "Plaza", "dates": ["2025-06-10"], "startTime": "10:00"`, 1), http.StatusBadRequest, domain.ReasonInvalidBackup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setup(t)
			rec := restore(h, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}
}
