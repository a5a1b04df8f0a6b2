package scheduling

import (
	"time"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// GenerateSlots строит сетку стартов от открытия с шагом SlotStepMinutes.
// Слот попадает в сетку, только если до закрытия остается не меньше TrailingWindowMinutes.
//
// now должен быть уже приведен к часовому поясу площадки. Если date совпадает с
// сегодняшней датой, слоты с временем <= текущего помечаются IsPast. Для дат в прошлом
// прошедшими считаются все слоты.
//
// Пример (09:00-22:00, шаг 30, хвост 30): 09:00, 09:30, ..., 21:30.
func GenerateSlots(policy Policy, window Window, date types.Date, now time.Time) []domain.CandidateSlot {
	today := types.DateOf(now)
	clock := types.NewTimeString(now)

	slots := make([]domain.CandidateSlot, 0)
	for m := window.Open.Minutes(); m < window.Close.Minutes(); m += policy.SlotStepMinutes {
		if window.Close.Minutes()-m < policy.TrailingWindowMinutes {
			break
		}

		start, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}

		slots = append(slots, domain.CandidateSlot{
			Label:         start.Label(),
			CanonicalTime: start,
			IsPast:        isPast(date, start, today, clock),
		})
	}

	return slots
}

func isPast(date types.Date, start types.TimeString, today types.Date, clock types.TimeString) bool {
	switch date.Compare(today) {
	case -1:
		return true
	case 0:
		return !start.IsAfter(clock)
	default:
		return false
	}
}

// isAligned возвращает true, если время кратно шагу сетки от открытия
func isAligned(policy Policy, window Window, start types.TimeString) bool {
	offset := start.Sub(window.Open)
	return offset%policy.SlotStepMinutes == 0
}

// isWithinGrid возвращает true, если старт лежит в диапазоне, который порождает GenerateSlots
func isWithinGrid(policy Policy, window Window, start types.TimeString) bool {
	return !start.IsBefore(window.Open) &&
		start.IsBefore(window.Close) &&
		window.Close.Sub(start) >= policy.TrailingWindowMinutes
}
