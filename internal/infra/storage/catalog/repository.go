package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/dbmetrics"
	"github.com/m04kA/BilliardBookingService/pkg/psqlbuilder"
)

// Repository каталог продаваемых длительностей сессии
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive возвращает активные варианты длительности по возрастанию
func (r *Repository) ListActive(ctx context.Context) ([]domain.DurationOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListActiveQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	options := make([]domain.DurationOption, 0)
	for rows.Next() {
		var o domain.DurationOption
		if err := rows.Scan(&o.ID, &o.Hours, &o.Active); err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		options = append(options, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return options, nil
}

func buildListActiveQuery() (string, []interface{}, error) {
	return psqlbuilder.Select("id", "hours", "is_active").
		From("duration_options").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("hours ASC").
		ToSql()
}
