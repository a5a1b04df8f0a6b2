package check_slot_bookable

import (
	"context"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/internal/scheduling"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// AvailabilityEngine движок доступности столов
type AvailabilityEngine interface {
	IsSlotBookable(ctx context.Context, tableID int64, date types.Date, start types.TimeString, durationHours float64) scheduling.Decision
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
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
