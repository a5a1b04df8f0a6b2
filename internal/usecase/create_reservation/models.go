package create_reservation

import (
	"time"

	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	UserID        int64   // ID сотрудника, оформляющего бронь
	TableID       int64   // ID стола
	Date          string  // "YYYY-MM-DD"
	StartTime     string  // "HH:MM" или "HH:MM:SS"
	DurationHours float64 // шаг 0.25 часа
	CustomerName  string
	CustomerPhone *string
	Notes         *string
}

// Response модель ответа с созданной бронью
type Response struct {
	ID            int64
	TableID       int64
	Date          types.Date
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours float64
	Status        string

	CustomerName  string
	CustomerPhone *string
	Notes         *string
	CreatedBy     *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
