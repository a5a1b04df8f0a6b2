package get_schedule

import (
	"context"

	"github.com/m04kA/BilliardBookingService/internal/service/venue/models"
)

type VenueService interface {
	GetSchedule(ctx context.Context, weekdayName string) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
