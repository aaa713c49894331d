package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GSO-BookingService/pkg/psqlbuilder"
)

const tableAuditLog = "audit_log"

var (
	ErrBuildQuery = errors.New("audit.repository: failed to build query")
	ErrExecQuery  = errors.New("audit.repository: failed to execute query")
	ErrScanRow    = errors.New("audit.repository: failed to scan row")
)

// Repository журнал аудита (append-only)
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	meta, err := json.Marshal(entry.Meta)
	if err != nil {
		return fmt.Errorf("%w: Append - encode meta: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert(tableAuditLog).
		Columns("id", "action", "actor", "entity_id", "meta", "at").
		Values(entry.ID, entry.Action, entry.Actor, entry.EntityID, meta, entry.At).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %w", ErrExecQuery, err)
	}
	return nil
}

// List возвращает последние limit записей, новые первыми
func (r *Repository) List(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "action", "actor", "entity_id", "meta", "at").
		From(tableAuditLog).
		OrderBy("at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.AuditEntry, 0, limit)
	for rows.Next() {
		var (
			entry domain.AuditEntry
			meta  []byte
		)
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.Actor, &entry.EntityID, &meta, &entry.At); err != nil {
			return nil, fmt.Errorf("%w: List - scan entry: %v", ErrScanRow, err)
		}
		if len(meta) > 0 {
			// мета только для чтения человеком, битую просто пропускаем
			_ = json.Unmarshal(meta, &entry.Meta)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
