package get_max_duration

import (
	"context"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// AvailabilityEngine движок доступности столов
type AvailabilityEngine interface {
	MaxDuration(ctx context.Context, tableID int64, date types.Date, start types.TimeString) (float64, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

// DurationCatalog каталог продаваемых длительностей
type DurationCatalog interface {
	ListActive(ctx context.Context) ([]domain.DurationOption, error)
}

// Metrics доменные счетчики
type Metrics interface {
	RecordAvailabilityUnknown(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
