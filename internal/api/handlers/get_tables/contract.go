package get_tables

import (
	"context"

	"github.com/m04kA/BilliardBookingService/internal/service/venue/models"
)

type VenueService interface {
	ListTables(ctx context.Context, onlyActive bool) (*models.TableListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
