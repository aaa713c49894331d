package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GSO-BookingService/pkg/psqlbuilder"
)

const (
	tableBookings     = "bookings"
	tableBookingDates = "booking_dates"
)

var bookingColumns = []string{
	"b.id",
	"b.requested_by",
	"b.event_type_id",
	"b.event_name",
	"b.venue",
	"b.start_time",
	"b.end_time",
	"b.amount",
	"b.discount_pct",
	"b.discount_value",
	"b.final_amount",
	"b.donation",
	"b.resources",
	"b.archived",
	"b.created_at",
	"b.updated_at",
}

// Repository репозиторий бронирований площадок (Postgres)
type Repository struct {
	db  DBExecutor
	log Logger
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, log Logger) *Repository {
	return &Repository{db: db, log: log}
}

// Create сохраняет бронирование вместе с его датами.
// Если в контексте есть транзакция, запись идёт в неё, иначе открывается своя.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) error {
	resources, err := json.Marshal(booking.Resources)
	if err != nil {
		return fmt.Errorf("%w: Create - %v", ErrEncodeResources, err)
	}

	return r.inTx(ctx, func(ctx context.Context, executor DBExecutor) error {
		query, args, err := psqlbuilder.Insert(tableBookings).
			Columns(
				"id",
				"requested_by",
				"event_type_id",
				"event_name",
				"venue",
				"booking_date",
				"start_time",
				"end_time",
				"amount",
				"discount_pct",
				"discount_value",
				"final_amount",
				"donation",
				"resources",
				"archived",
				"created_at",
				"updated_at",
			).
			Values(
				booking.ID,
				booking.RequestedBy,
				eventTypeID(booking.Event),
				booking.Event.Name,
				string(booking.Venue),
				booking.PrimaryDate(),
				booking.StartTime,
				booking.EndTime,
				booking.Amount,
				booking.DiscountPct,
				booking.DiscountValue,
				booking.FinalAmount,
				booking.Donation,
				resources,
				booking.Archived,
				booking.CreatedAt,
				booking.UpdatedAt,
			).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
		}

		return insertDates(ctx, executor, "Create", booking.ID, booking.Dates)
	})
}

// Update перезаписывает поля бронирования и заменяет набор дат
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	resources, err := json.Marshal(booking.Resources)
	if err != nil {
		return fmt.Errorf("%w: Update - %v", ErrEncodeResources, err)
	}

	return r.inTx(ctx, func(ctx context.Context, executor DBExecutor) error {
		query, args, err := psqlbuilder.Update(tableBookings).
			Set("requested_by", booking.RequestedBy).
			Set("event_type_id", eventTypeID(booking.Event)).
			Set("event_name", booking.Event.Name).
			Set("venue", string(booking.Venue)).
			Set("booking_date", booking.PrimaryDate()).
			Set("start_time", booking.StartTime).
			Set("end_time", booking.EndTime).
			Set("amount", booking.Amount).
			Set("discount_pct", booking.DiscountPct).
			Set("discount_value", booking.DiscountValue).
			Set("final_amount", booking.FinalAmount).
			Set("donation", booking.Donation).
			Set("resources", resources).
			Set("archived", booking.Archived).
			Set("updated_at", booking.UpdatedAt).
			Where(squirrel.Eq{"id": booking.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
		}

		if err := execAffecting(ctx, executor, "Update", query, args); err != nil {
			return err
		}

		query, args, err = psqlbuilder.Delete(tableBookingDates).
			Where(squirrel.Eq{"booking_id": booking.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Update - build delete dates query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Update - delete dates: %w", ErrExecQuery, err)
		}

		return insertDates(ctx, executor, "Update", booking.ID, booking.Dates)
	})
}

// SetArchived меняет признак архивации
func (r *Repository) SetArchived(ctx context.Context, id string, archived bool, updatedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("archived", archived).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetArchived - build update query: %v", ErrBuildQuery, err)
	}

	return execAffecting(ctx, executor, "SetArchived", query, args)
}

// GetByID получает бронирование по ID.
// В транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings + " b").
		Where(squirrel.Eq{"b.id": id})
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	if err := loadDates(ctx, executor, "GetByID", []*domain.Booking{booking}); err != nil {
		return nil, err
	}

	return booking, nil
}

// List возвращает бронирования по фильтру
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, "List", query, args)
}

// FindActiveByVenueAndDates возвращает неархивные бронирования площадки,
// у которых есть хотя бы одна из переданных дат, в порядке создания.
//
// В транзакции сначала берётся advisory lock на площадку: SERIALIZABLE
// не блокирует вставку новых строк, а FOR UPDATE блокирует только найденные.
func (r *Repository) FindActiveByVenueAndDates(ctx context.Context, venue domain.Venue, dates []time.Time, ignoreID *string) ([]*domain.Booking, error) {
	if len(dates) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)
	inTx := dbmetrics.IsInTransaction(ctx)

	if inTx {
		if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", string(venue)); err != nil {
			return nil, fmt.Errorf("%w: FindActiveByVenueAndDates - advisory lock: %w", ErrExecQuery, err)
		}
	}

	query, args, err := candidatesQuery(venue, dates, ignoreID, inTx).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByVenueAndDates - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, "FindActiveByVenueAndDates", query, args)
}

// Delete удаляет даты бронирования, затем само бронирование, в одной транзакции
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.inTx(ctx, func(ctx context.Context, executor DBExecutor) error {
		query, args, err := psqlbuilder.Delete(tableBookingDates).
			Where(squirrel.Eq{"booking_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Delete - build delete dates query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Delete - delete dates: %w", ErrExecQuery, err)
		}

		query, args, err = psqlbuilder.Delete(tableBookings).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
		}

		return execAffecting(ctx, executor, "Delete", query, args)
	})
}

// ReplaceAll удаляет все бронирования и вставляет переданные (восстановление из бэкапа)
func (r *Repository) ReplaceAll(ctx context.Context, bookings []*domain.Booking) error {
	return r.inTx(ctx, func(ctx context.Context, executor DBExecutor) error {
		for _, table := range []string{tableBookingDates, tableBookings} {
			query, args, err := psqlbuilder.Delete(table).ToSql()
			if err != nil {
				return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
			}
			if _, err := executor.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: ReplaceAll - clear %s: %w", ErrExecQuery, table, err)
			}
		}

		for _, booking := range bookings {
			if err := r.Create(ctx, booking); err != nil {
				return err
			}
		}
		return nil
	})
}

// Helper methods

func listQuery(filter domain.BookingsFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(bookingColumns...).From(tableBookings + " b")

	switch filter.Status {
	case domain.StatusFilterArchived:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.archived": true})
	case domain.StatusFilterAll:
	default:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.archived": false})
	}

	if filter.Venue != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.venue": string(*filter.Venue)})
	}

	// Бронь попадает в период, если хотя бы одна её дата внутри
	if filter.From != nil || filter.To != nil {
		dates := squirrel.Select("1").From(tableBookingDates + " d").Where("d.booking_id = b.id")
		if filter.From != nil {
			dates = dates.Where(squirrel.GtOrEq{"d.booking_date": domain.TruncateDate(*filter.From)})
		}
		if filter.To != nil {
			dates = dates.Where(squirrel.LtOrEq{"d.booking_date": domain.TruncateDate(*filter.To)})
		}
		selectBuilder = selectBuilder.Where(existsExpr(dates))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"b.requested_by": pattern},
			squirrel.ILike{"b.event_name": pattern},
			squirrel.ILike{"b.venue": pattern},
		})
	}

	if filter.Sort == domain.SortAsc {
		selectBuilder = selectBuilder.OrderBy("b.booking_date ASC", "b.start_time ASC", "b.created_at ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("b.booking_date DESC", "b.start_time DESC", "b.created_at DESC")
	}

	return selectBuilder
}

func candidatesQuery(venue domain.Venue, dates []time.Time, ignoreID *string, forUpdate bool) squirrel.SelectBuilder {
	days := make([]time.Time, len(dates))
	for i, d := range dates {
		days[i] = domain.TruncateDate(d)
	}

	dateMatch := squirrel.Select("1").
		From(tableBookingDates + " d").
		Where("d.booking_id = b.id").
		Where(squirrel.Eq{"d.booking_date": days})

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings + " b").
		Where(squirrel.Eq{"b.venue": string(venue)}).
		Where(squirrel.Eq{"b.archived": false}).
		Where(existsExpr(dateMatch))

	if ignoreID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.id": *ignoreID})
	}

	selectBuilder = selectBuilder.OrderBy("b.created_at ASC", "b.id ASC")

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder
}

// existsExpr встраивает подзапрос с '?' плейсхолдерами; внешний билдер перенумерует их в $n
func existsExpr(sub squirrel.SelectBuilder) squirrel.Sqlizer {
	query, args, err := sub.PlaceholderFormat(squirrel.Question).ToSql()
	if err != nil {
		return squirrel.Expr("EXISTS (SELECT 1 WHERE false)")
	}
	return squirrel.Expr("EXISTS ("+query+")", args...)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func eventTypeID(ref domain.EventRef) sql.NullString {
	return sql.NullString{String: ref.TypeID, Valid: ref.IsKnown()}
}

func (r *Repository) inTx(ctx context.Context, fn func(ctx context.Context, executor DBExecutor) error) (err error) {
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx, dbmetrics.GetExecutor(ctx, r.db))
	}

	txBeginner, ok := r.db.(TxBeginner)
	if !ok {
		return fmt.Errorf("%w: db type not supported", ErrTransaction)
	}

	tx, err := txBeginner.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: BeginTx: %v", ErrTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx), tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: Commit: %w", ErrTransaction, err)
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
		return ErrBookingNotFound
	}
	return nil
}

func insertDates(ctx context.Context, executor DBExecutor, op, bookingID string, dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(tableBookingDates).Columns("booking_id", "booking_date", "position")
	for i, d := range dates {
		insertBuilder = insertBuilder.Values(bookingID, domain.TruncateDate(d), i)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build insert dates query: %v", ErrBuildQuery, op, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s - insert dates: %w", ErrExecQuery, op, err)
	}
	return nil
}

func loadDates(ctx context.Context, executor DBExecutor, op string, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]string, len(bookings))
	byID := make(map[string]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	query, args, err := psqlbuilder.Select("booking_id", "booking_date").
		From(tableBookingDates).
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("booking_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build select dates query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - select dates: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  string
			day time.Time
		)
		if err := rows.Scan(&id, &day); err != nil {
			return fmt.Errorf("%w: %s - scan date: %v", ErrScanRow, op, err)
		}
		if b, ok := byID[id]; ok {
			b.Dates = append(b.Dates, domain.TruncateDate(day))
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return nil
}

func (r *Repository) queryBookings(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Booking, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	rows.Close()

	if err := loadDates(ctx, executor, op, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking читает одну строку; даты подгружаются отдельно
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking     domain.Booking
		eventTypeID sql.NullString
		venue       string
		resources   []byte
	)

	err := row.Scan(
		&booking.ID,
		&booking.RequestedBy,
		&eventTypeID,
		&booking.Event.Name,
		&venue,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Amount,
		&booking.DiscountPct,
		&booking.DiscountValue,
		&booking.FinalAmount,
		&booking.Donation,
		&resources,
		&booking.Archived,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Venue = domain.Venue(venue)
	if eventTypeID.Valid && eventTypeID.String != "" {
		booking.Event.Kind = domain.EventKindKnown
		booking.Event.TypeID = eventTypeID.String
	} else {
		booking.Event.Kind = domain.EventKindCustom
	}

	// Битый JSON ресурсов не должен ломать чтение брони
	if len(resources) > 0 {
		if err := json.Unmarshal(resources, &booking.Resources); err != nil {
			r.log.Warn("booking %s: corrupt resources column, using defaults: %v", booking.ID, err)
			booking.Resources = domain.Resources{}
		}
	}

	return &booking, nil
}
