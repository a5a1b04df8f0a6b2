package add_closed_date

import (
	"context"

	"github.com/m04kA/BilliardBookingService/internal/service/venue/models"
)

type VenueService interface {
	AddClosedDate(ctx context.Context, req *models.AddClosedDateRequest) (*models.ClosedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
