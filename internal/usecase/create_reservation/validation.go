package create_reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/internal/scheduling"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// validateRequest валидирует входные данные, разбирает дату, время и длительность в минутах
func validateRequest(req *Request) (types.Date, types.TimeString, int, error) {
	if req.UserID <= 0 {
		return types.Date{}, types.TimeString{}, 0, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.TableID <= 0 {
		return types.Date{}, types.TimeString{}, 0, fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		return types.Date{}, types.TimeString{}, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return types.Date{}, types.TimeString{}, 0, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	minutes, err := durationMinutes(req.DurationHours)
	if err != nil {
		return types.Date{}, types.TimeString{}, 0, err
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return types.Date{}, types.TimeString{}, 0, fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxCustomerNameLength {
		return types.Date{}, types.TimeString{}, 0, fmt.Errorf("%w: customerName is longer than %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return types.Date{}, types.TimeString{}, 0, fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return date, start, minutes, nil
}

// durationMinutes переводит длительность в минуты, проверяя шаг 0.25 часа
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

// mapBookingError переводит отказ движка в ошибку use case
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

// isConflict true для отказов, вызванных чужими бронями
func isConflict(err error) bool {
	return errors.Is(err, ErrSlotNotAvailable) ||
		errors.Is(err, ErrGapNotAllowed) ||
		errors.Is(err, ErrDurationTooLong) ||
		errors.Is(err, ErrConcurrentUpdate)
}
