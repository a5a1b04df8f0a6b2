package check_slot_bookable

import (
	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// Request модель запроса проверки интервала
type Request struct {
	TableID       int64
	Date          string  // "YYYY-MM-DD"
	StartTime     string  // "HH:MM" или "HH:MM:SS"
	DurationHours float64 // шаг 0.25 часа
}

// Response результат проверки с тремя состояниями.
// AvailabilityUnknown означает, что данные не удалось прочитать, бронировать нельзя.
type Response struct {
	TableID       int64
	Date          types.Date
	StartTime     types.TimeString
	DurationHours float64
	Availability  domain.Availability
}

// Bookable true только для AvailabilityAvailable
func (r *Response) Bookable() bool {
	return r.Availability.IsBookable()
}
