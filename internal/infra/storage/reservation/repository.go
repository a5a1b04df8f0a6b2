package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/dbmetrics"
	"github.com/m04kA/BilliardBookingService/pkg/psqlbuilder"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

const tableName = "reservations"

// Коды ошибок PostgreSQL, которые репозиторий переводит в доменные ошибки
const (
	pqExclusionViolation  = "23P01"
	pqForeignKeyViolation = "23503"
	pqSerializationFailed = "40001"
)

var columns = []string{
	"id",
	"table_id",
	"reservation_date",
	"start_time",
	"end_time",
	"duration_hours",
	"status",
	"customer_name",
	"customer_phone",
	"notes",
	"created_by",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронями столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь.
// Пересечение с активной бронью того же стола отсекается exclusion constraint в БД
// и возвращается как ErrSlotNotAvailable.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsertQuery(reservation)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронь по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildGetByIDQuery(id, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// GetByTableAndDate получает брони стола на дату с фильтрацией по статусу.
// По умолчанию неактивные брони (отмененные, завершенные) исключаются.
func (r *Repository) GetByTableAndDate(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTableAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTableAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetActiveReservations возвращает активные брони стола на дату, отсортированные по началу.
// Если вызывается внутри транзакции, строки блокируются (FOR UPDATE),
// чтобы параллельное бронирование не прошло мимо проверки доступности.
func (r *Repository) GetActiveReservations(ctx context.Context, tableID int64, date types.Date) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildActiveQuery(tableID, date, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus обновляет статус брони
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Reschedule переносит бронь на новый интервал и переводит ее в статус rescheduled
func (r *Repository) Reschedule(ctx context.Context, reservation *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildRescheduleQuery(reservation)
	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrReservationNotFound
	}
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	reservation.UpdatedAt = updatedAt.Time
	return nil
}

func buildInsertQuery(reservation *domain.Reservation) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(
			"table_id",
			"reservation_date",
			"start_time",
			"end_time",
			"duration_hours",
			"status",
			"customer_name",
			"customer_phone",
			"notes",
			"created_by",
		).
		Values(
			reservation.TableID,
			reservation.Date,
			reservation.StartTime,
			reservation.EndTime,
			reservation.DurationHours,
			reservation.Status,
			reservation.CustomerName,
			reservation.CustomerPhone,
			reservation.Notes,
			reservation.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func buildGetByIDQuery(id int64, forUpdate bool) (string, []interface{}, error) {
	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder.ToSql()
}

func buildListQuery(filter domain.ReservationsFilter) (string, []interface{}, error) {
	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"table_id": filter.TableID}).
		Where(squirrel.Eq{"reservation_date": filter.Date})

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		builder = builder.Where(squirrel.NotEq{"status": statusStrings(domain.InactiveStatuses)})
	}

	return builder.OrderBy("start_time ASC").ToSql()
}

func buildActiveQuery(tableID int64, date types.Date, forUpdate bool) (string, []interface{}, error) {
	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"table_id": tableID}).
		Where(squirrel.Eq{"reservation_date": date}).
		Where(squirrel.NotEq{"status": statusStrings(domain.InactiveStatuses)}).
		OrderBy("start_time ASC")

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder.ToSql()
}

func buildRescheduleQuery(reservation *domain.Reservation) (string, []interface{}, error) {
	return psqlbuilder.Update(tableName).
		Set("reservation_date", reservation.Date).
		Set("start_time", reservation.StartTime).
		Set("end_time", reservation.EndTime).
		Set("duration_hours", reservation.DurationHours).
		Set("status", domain.StatusRescheduled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reservation.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
}

// mapWriteError переводит ошибки ограничений PostgreSQL в ошибки репозитория.
// Возвращает nil, если ошибка не распознана.
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch string(pqErr.Code) {
	case pqExclusionViolation:
		return fmt.Errorf("%w: %s", ErrSlotNotAvailable, pqErr.Constraint)
	case pqForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrTableNotFound, pqErr.Constraint)
	case pqSerializationFailed:
		return ErrConcurrentUpdate
	default:
		return nil
	}
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.TableID,
		&reservation.Date,
		&reservation.StartTime,
		&reservation.EndTime,
		&reservation.DurationHours,
		&reservation.Status,
		&reservation.CustomerName,
		&reservation.CustomerPhone,
		&reservation.Notes,
		&reservation.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс броней
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
