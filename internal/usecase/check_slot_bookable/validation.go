package check_slot_bookable

import (
	"fmt"

	"github.com/m04kA/BilliardBookingService/internal/domain"
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

	if err := validateDuration(req.DurationHours); err != nil {
		return types.Date{}, types.TimeString{}, err
	}

	return date, start, nil
}

// validateDuration длительность положительная, кратна 0.25 часа и не больше суточного лимита
func validateDuration(hours float64) error {
	if hours <= 0 {
		return fmt.Errorf("%w: durationHours must be positive", ErrInvalidInput)
	}
	if hours > domain.MaxReservationHours {
		return fmt.Errorf("%w: durationHours must not exceed %d", ErrInvalidInput, domain.MaxReservationHours)
	}
	if minutes := domain.HoursToMinutes(hours); minutes%domain.DurationResolutionMinutes != 0 ||
		domain.MinutesToHours(minutes) != hours {
		return fmt.Errorf("%w: durationHours must be a multiple of 0.25", ErrInvalidInput)
	}
	return nil
}
