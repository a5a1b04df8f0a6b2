package reschedule_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/internal/scheduling"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

func validateRequest(req *Request) (types.Date, types.TimeString, error) {
	if req.ReservationID <= 0 {
		return types.Date{}, types.TimeString{}, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return types.Date{}, types.TimeString{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		return types.Date{}, types.TimeString{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return types.Date{}, types.TimeString{}, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	if req.DurationHours != nil {
		if _, err := durationMinutes(*req.DurationHours); err != nil {
			return types.Date{}, types.TimeString{}, err
		}
	}

	return date, start, nil
}

func durationMinutes(hours float64) (int, error) {
	if hours <= 0 || hours > domain.MaxReservationHours {
		return 0, fmt.Errorf("%w: durationHours must be in (0, %d]", ErrInvalidInput, domain.MaxReservationHours)
	}
	minutes := domain.HoursToMinutes(hours)
	if minutes%domain.DurationResolutionMinutes != 0 || domain.MinutesToHours(minutes) != hours {
		return 0, fmt.Errorf("%w: durationHours must be a multiple of 0.25", ErrInvalidInput)
	}
	return minutes, nil
}

func mapBookingError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrClosed):
		return fmt.Errorf("%w: %v", ErrVenueClosed, err)
	case errors.Is(err, scheduling.ErrOffGrid), errors.Is(err, scheduling.ErrOutsideWindow):
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	case errors.Is(err, scheduling.ErrSlotPast):
		return fmt.Errorf("%w: %v", ErrSlotInPast, err)
	case errors.Is(err, scheduling.ErrSlotReserved), errors.Is(err, scheduling.ErrConflict):
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	case errors.Is(err, scheduling.ErrGapBlocked):
		return fmt.Errorf("%w: %v", ErrGapNotAllowed, err)
	case errors.Is(err, scheduling.ErrDurationExceedsMax):
		return fmt.Errorf("%w: %v", ErrDurationTooLong, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func isConflict(err error) bool {
	return errors.Is(err, ErrSlotNotAvailable) ||
		errors.Is(err, ErrGapNotAllowed) ||
		errors.Is(err, ErrDurationTooLong) ||
		errors.Is(err, ErrConcurrentUpdate)
}
