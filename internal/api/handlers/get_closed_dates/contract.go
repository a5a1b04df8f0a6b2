package get_closed_dates

import (
	"context"

	"github.com/m04kA/BilliardBookingService/internal/service/venue/models"
)

type VenueService interface {
	ListClosedDates(ctx context.Context, req *models.ListClosedDatesRequest) (*models.ClosedDateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
