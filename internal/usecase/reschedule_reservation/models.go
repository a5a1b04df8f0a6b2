package reschedule_reservation

import (
	"time"

	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// Request модель запроса на перенос брони
type Request struct {
	ReservationID int64
	UserID        int64
	Date          string   // новая дата "YYYY-MM-DD"
	StartTime     string   // новое время начала "HH:MM"
	DurationHours *float64 // nil - оставить текущую длительность
}

// Response модель ответа с перенесенной бронью
type Response struct {
	ID            int64
	TableID       int64
	Date          types.Date
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours float64
	Status        string

	PreviousDate      types.Date
	PreviousStartTime types.TimeString

	CustomerName  string
	CustomerPhone *string
	Notes         *string

	UpdatedAt time.Time
}
