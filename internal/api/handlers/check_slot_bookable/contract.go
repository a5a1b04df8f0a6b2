package check_slot_bookable

import (
	"context"

	checkSlot "github.com/m04kA/BilliardBookingService/internal/usecase/check_slot_bookable"
)

type CheckSlotBookableUseCase interface {
	Execute(ctx context.Context, req *checkSlot.Request) (*checkSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
