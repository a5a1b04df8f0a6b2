package list_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// AvailabilityEngine движок доступности столов
type AvailabilityEngine interface {
	ListAvailableSlots(ctx context.Context, tableID int64, date types.Date, now time.Time) ([]domain.CandidateSlot, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

// Metrics доменные счетчики
type Metrics interface {
	RecordSlotQuery(outcome string)
	RecordAvailabilityUnknown(operation string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
