package venue

import (
	"context"
	"time"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// ScheduleRepository интерфейс репозитория расписания и закрытых дат
type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]*domain.OperatingSchedule, error)
	GetByWeekday(ctx context.Context, weekday time.Weekday) (*domain.OperatingSchedule, error)
	Upsert(ctx context.Context, schedule *domain.OperatingSchedule) (*domain.OperatingSchedule, error)
	ListClosedDates(ctx context.Context, from, to types.Date) ([]*domain.ClosedDate, error)
	AddClosedDate(ctx context.Context, closedDate *domain.ClosedDate) (*domain.ClosedDate, error)
	DeleteClosedDate(ctx context.Context, date types.Date) error
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
