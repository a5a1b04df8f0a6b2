package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// Причины отказа при финальной проверке брони
var (
	ErrClosed             = errors.New("scheduling: venue is closed on this date")
	ErrOffGrid            = errors.New("scheduling: start time is not on the slot grid")
	ErrOutsideWindow      = errors.New("scheduling: interval is outside operating hours")
	ErrSlotPast           = errors.New("scheduling: slot is in the past")
	ErrSlotReserved       = errors.New("scheduling: slot is reserved")
	ErrGapBlocked         = errors.New("scheduling: slot would leave an unusable gap")
	ErrDurationExceedsMax = errors.New("scheduling: duration exceeds maximum for this start")
	ErrConflict           = errors.New("scheduling: interval overlaps an active reservation")
)

// IsBookable проверяет только пересечение [start, start+minutes) с активными бронями
// и попадание интервала в окно работы. Сетку, прошедшее время и буферы не проверяет.
func IsBookable(window Window, start types.TimeString, minutes int, reservations []*domain.Reservation) bool {
	if minutes <= 0 {
		return false
	}

	end, err := start.AddMinutes(minutes)
	if err != nil {
		return false
	}
	if !window.Contains(start, end) {
		return false
	}

	for _, r := range activeOnly(reservations) {
		if r.Overlaps(start, end) {
			return false
		}
	}

	return true
}

// CheckBooking строгая проверка для записи брони: выполняется внутри транзакции
// над свежим снимком. Возвращает nil или одну из ошибок Err* этого пакета.
func CheckBooking(policy Policy, window Window, date types.Date, start types.TimeString, minutes int, reservations []*domain.Reservation, now time.Time) error {
	if !isWithinGrid(policy, window, start) {
		return fmt.Errorf("%w: start %s, window %s-%s", ErrOutsideWindow, start, window.Open, window.Close)
	}
	if !isAligned(policy, window, start) {
		return fmt.Errorf("%w: %s", ErrOffGrid, start)
	}

	end, err := start.AddMinutes(minutes)
	if err != nil || !window.Contains(start, end) {
		return fmt.Errorf("%w: %s + %d min, close %s", ErrOutsideWindow, start, minutes, window.Close)
	}

	slot := Evaluate(policy, window, []domain.CandidateSlot{{
		CanonicalTime: start,
		IsPast:        isPast(date, start, types.DateOf(now), types.NewTimeString(now)),
	}}, reservations)[0]

	switch {
	case slot.IsPast:
		return fmt.Errorf("%w: %s %s", ErrSlotPast, date, start)
	case slot.IsReserved:
		return fmt.Errorf("%w: %s", ErrSlotReserved, start)
	case slot.HasGapIssue:
		return fmt.Errorf("%w: %s", ErrGapBlocked, start)
	}

	if !IsBookable(window, start, minutes, reservations) {
		return fmt.Errorf("%w: %s-%s", ErrConflict, start, end)
	}

	if maxMinutes := MaxDurationMinutes(policy, window, start, reservations); minutes > maxMinutes {
		return fmt.Errorf("%w: requested %d min, max %d min", ErrDurationExceedsMax, minutes, maxMinutes)
	}

	return nil
}
