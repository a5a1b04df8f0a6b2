package get_schedules

import (
	"context"

	"github.com/m04kA/BilliardBookingService/internal/service/venue/models"
)

type VenueService interface {
	GetSchedules(ctx context.Context) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
