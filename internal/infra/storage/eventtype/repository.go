package eventtype

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GSO-BookingService/pkg/psqlbuilder"
)

const tableEventTypes = "event_types"

var columns = []string{"id", "name", "base_amount", "default_resources", "created_at", "updated_at"}

// Repository каталог типов событий (Postgres)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все типы событий по имени
func (r *Repository) List(ctx context.Context) ([]*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableEventTypes).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	eventTypes := make([]*domain.EventType, 0)
	for rows.Next() {
		et, err := scanEventType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan event type: %v", ErrScanRow, err)
		}
		eventTypes = append(eventTypes, et)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return eventTypes, nil
}

// GetByID получает тип события по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableEventTypes).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	et, err := scanEventType(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event type: %v", ErrScanRow, err)
	}

	return et, nil
}

func (r *Repository) Create(ctx context.Context, et *domain.EventType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	resources, err := json.Marshal(et.DefaultResources)
	if err != nil {
		return fmt.Errorf("%w: Create - encode resources: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert(tableEventTypes).
		Columns(columns...).
		Values(et.ID, et.Name, et.BaseAmount, resources, et.CreatedAt, et.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, et *domain.EventType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	resources, err := json.Marshal(et.DefaultResources)
	if err != nil {
		return fmt.Errorf("%w: Update - encode resources: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update(tableEventTypes).
		Set("name", et.Name).
		Set("base_amount", et.BaseAmount).
		Set("default_resources", resources).
		Set("updated_at", et.UpdatedAt).
		Where(squirrel.Eq{"id": et.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return execAffecting(ctx, executor, "Update", query, args)
}

// Delete удаляет тип события. Бронирования сохраняют event_name, ссылка обнуляется в БД (ON DELETE SET NULL).
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableEventTypes).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return execAffecting(ctx, executor, "Delete", query, args)
}

// ReplaceAll заменяет весь каталог. Вызывается внутри транзакции восстановления.
func (r *Repository) ReplaceAll(ctx context.Context, eventTypes []*domain.EventType) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: ReplaceAll requires a transaction", ErrTransaction)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableEventTypes).ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - clear: %w", ErrExecQuery, err)
	}

	for _, et := range eventTypes {
		if err := r.Create(ctx, et); err != nil {
			return err
		}
	}
	return nil
}

func execAffecting(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrEventTypeNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEventType(row rowScanner) (*domain.EventType, error) {
	var (
		et        domain.EventType
		resources []byte
	)

	if err := row.Scan(&et.ID, &et.Name, &et.BaseAmount, &resources, &et.CreatedAt, &et.UpdatedAt); err != nil {
		return nil, err
	}

	if len(resources) > 0 {
		if err := json.Unmarshal(resources, &et.DefaultResources); err != nil {
			et.DefaultResources = domain.Resources{}
		}
	}

	return &et, nil
}
