package table

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/dbmetrics"
	"github.com/m04kA/BilliardBookingService/pkg/psqlbuilder"
)

const tableName = "billiard_tables"

// Repository репозиторий бильярдных столов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает столы площадки. onlyActive отбрасывает выведенные из работы столы.
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(onlyActive)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		var t domain.Table
		var createdAt sql.NullTime
		if err := rows.Scan(&t.ID, &t.Name, &t.Kind, &t.IsActive, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		t.CreatedAt = createdAt.Time
		tables = append(tables, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "kind", "is_active", "created_at").
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Table
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.Name, &t.Kind, &t.IsActive, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}
	t.CreatedAt = createdAt.Time

	return &t, nil
}

// Create добавляет стол
func (r *Repository) Create(ctx context.Context, t *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("name", "kind", "is_active").
		Values(t.Name, t.Kind, t.IsActive).
		Suffix("ON CONFLICT (name) DO UPDATE SET kind = EXCLUDED.kind RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	t.CreatedAt = createdAt.Time

	return t, nil
}

func buildListQuery(onlyActive bool) (string, []interface{}, error) {
	builder := psqlbuilder.Select("id", "name", "kind", "is_active", "created_at").
		From(tableName).
		OrderBy("id ASC")

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	return builder.ToSql()
}
