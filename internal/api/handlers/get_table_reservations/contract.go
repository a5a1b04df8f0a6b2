package get_table_reservations

import (
	"context"

	"github.com/m04kA/BilliardBookingService/internal/service/reservations/models"
)

type ReservationService interface {
	GetTableReservations(ctx context.Context, req *models.GetTableReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
