package get_max_duration

import (
	"fmt"

	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// validateRequest валидирует входные данные и разбирает дату и время
func validateRequest(req *Request) (types.Date, types.TimeString, error) {
	if req.TableID <= 0 {
		return types.Date{}, types.TimeString{}, fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		return types.Date{}, types.TimeString{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return types.Date{}, types.TimeString{}, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	return date, start, nil
}
