package list_available_slots

import (
	"fmt"

	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// validateRequest валидирует входные данные и возвращает разобранную дату
func validateRequest(req *Request) (types.Date, error) {
	if req.TableID <= 0 {
		return types.Date{}, fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		return types.Date{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return date, nil
}
