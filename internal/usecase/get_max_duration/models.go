package get_max_duration

import (
	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// Request модель запроса максимальной длительности
type Request struct {
	TableID   int64
	Date      string // "YYYY-MM-DD"
	StartTime string // "HH:MM" или "HH:MM:SS"
}

// Response максимальная длительность и варианты каталога, которые в нее помещаются
type Response struct {
	TableID   int64
	Date      types.Date
	StartTime types.TimeString
	MaxHours  float64                 // кратно 0.5, 0 если бронировать нельзя
	Durations []domain.DurationOption // по возрастанию, пустой список блокирует бронирование
}
