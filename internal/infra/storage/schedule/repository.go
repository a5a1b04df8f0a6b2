package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/dbmetrics"
	"github.com/m04kA/BilliardBookingService/pkg/psqlbuilder"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

const (
	schedulesTable   = "operating_schedules"
	closedDatesTable = "closed_dates"
)

const (
	pqUniqueViolation = "23505"
	pqCheckViolation  = "23514"
)

var scheduleColumns = []string{
	"id",
	"weekday",
	"open_time",
	"close_time",
	"is_active",
	"is_closed_override",
	"updated_at",
}

// Repository репозиторий расписания работы площадки и закрытых дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWeekday получает расписание дня недели
func (r *Repository) GetByWeekday(ctx context.Context, weekday time.Weekday) (*domain.OperatingSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From(schedulesTable).
		Where(squirrel.Eq{"weekday": weekday.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	schedule, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - scan schedule: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// GetSchedule то же, что GetByWeekday, но отсутствие расписания возвращает nil без ошибки.
// Так движок доступности считает такой день закрытым.
func (r *Repository) GetSchedule(ctx context.Context, weekday time.Weekday) (*domain.OperatingSchedule, error) {
	schedule, err := r.GetByWeekday(ctx, weekday)
	if errors.Is(err, ErrScheduleNotFound) {
		return nil, nil
	}
	return schedule, err
}

// GetAll получает расписание на всю неделю, начиная с воскресенья
func (r *Repository) GetAll(ctx context.Context) ([]*domain.OperatingSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From(schedulesTable).
		OrderBy(weekdayOrder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.OperatingSchedule, 0, 7)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// Upsert создает или обновляет расписание дня недели
func (r *Repository) Upsert(ctx context.Context, schedule *domain.OperatingSchedule) (*domain.OperatingSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpsertQuery(schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqCheckViolation {
			return nil, ErrInvalidWindow
		}
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	schedule.UpdatedAt = updatedAt.Time
	return schedule, nil
}

// IsDateClosed возвращает true, если дата отмечена как нерабочая
func (r *Repository) IsDateClosed(ctx context.Context, date types.Date) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(closedDatesTable).
		Where(squirrel.Eq{"closed_date": date}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsDateClosed - build select query: %v", ErrBuildQuery, err)
	}

	var closed bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&closed); err != nil {
		return false, fmt.Errorf("%w: IsDateClosed - scan: %v", ErrScanRow, err)
	}

	return closed, nil
}

// ListClosedDates получает закрытые даты в диапазоне [from, to].
// Нулевая граница не ограничивает выборку.
func (r *Repository) ListClosedDates(ctx context.Context, from, to types.Date) ([]*domain.ClosedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListClosedQuery(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: ListClosedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListClosedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.ClosedDate, 0)
	for rows.Next() {
		var cd domain.ClosedDate
		var createdAt sql.NullTime
		if err := rows.Scan(&cd.Date, &cd.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListClosedDates - scan row: %v", ErrScanRow, err)
		}
		cd.CreatedAt = createdAt.Time
		dates = append(dates, &cd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListClosedDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// AddClosedDate отмечает дату нерабочей
func (r *Repository) AddClosedDate(ctx context.Context, closedDate *domain.ClosedDate) (*domain.ClosedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(closedDatesTable).
		Columns("closed_date", "reason").
		Values(closedDate.Date, closedDate.Reason).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddClosedDate - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrClosedDateExists
		}
		return nil, fmt.Errorf("%w: AddClosedDate - execute insert: %v", ErrExecQuery, err)
	}

	closedDate.CreatedAt = createdAt.Time
	return closedDate, nil
}

// DeleteClosedDate снимает отметку о закрытии даты
func (r *Repository) DeleteClosedDate(ctx context.Context, date types.Date) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(closedDatesTable).
		Where(squirrel.Eq{"closed_date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteClosedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteClosedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteClosedDate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrClosedDateNotFound
	}

	return nil
}

// weekdayOrder сортировка по порядку дней недели, а не по алфавиту
const weekdayOrder = "CASE weekday " +
	"WHEN 'Sunday' THEN 0 WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3 " +
	"WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 ELSE 6 END"

func buildUpsertQuery(schedule *domain.OperatingSchedule) (string, []interface{}, error) {
	return psqlbuilder.Insert(schedulesTable).
		Columns("weekday", "open_time", "close_time", "is_active", "is_closed_override").
		Values(
			schedule.Weekday.String(),
			schedule.OpenTime,
			schedule.CloseTime,
			schedule.IsActive,
			schedule.IsClosedOverride,
		).
		Suffix("ON CONFLICT (weekday) DO UPDATE SET " +
			"open_time = EXCLUDED.open_time, " +
			"close_time = EXCLUDED.close_time, " +
			"is_active = EXCLUDED.is_active, " +
			"is_closed_override = EXCLUDED.is_closed_override, " +
			"updated_at = NOW() " +
			"RETURNING id, updated_at").
		ToSql()
}

func buildListClosedQuery(from, to types.Date) (string, []interface{}, error) {
	builder := psqlbuilder.Select("closed_date", "reason", "created_at").
		From(closedDatesTable).
		OrderBy("closed_date ASC")

	if !from.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{"closed_date": from})
	}
	if !to.IsZero() {
		builder = builder.Where(squirrel.LtOrEq{"closed_date": to})
	}

	return builder.ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*domain.OperatingSchedule, error) {
	var schedule domain.OperatingSchedule
	var weekday string
	var updatedAt sql.NullTime

	err := row.Scan(
		&schedule.ID,
		&weekday,
		&schedule.OpenTime,
		&schedule.CloseTime,
		&schedule.IsActive,
		&schedule.IsClosedOverride,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	day, ok := domain.ParseWeekday(weekday)
	if !ok {
		return nil, fmt.Errorf("unknown weekday %q", weekday)
	}
	schedule.Weekday = day
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}
