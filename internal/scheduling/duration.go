package scheduling

import (
	"sort"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// MaxDurationMinutes максимальная длительность сессии от start в минутах.
//
//	min(close - start, (nextStart - start) - buffer), не меньше 0,
//	округлено вниз до RoundingMinutes.
//
// nextStart - ближайшая активная бронь, начинающаяся строго после start.
// Если start вне окна или внутри активной брони, результат 0.
func MaxDurationMinutes(policy Policy, window Window, start types.TimeString, reservations []*domain.Reservation) int {
	if start.IsBefore(window.Open) || !start.IsBefore(window.Close) {
		return 0
	}

	active := activeOnly(reservations)
	if isReserved(start, active) {
		return 0
	}

	limit := window.Close.Sub(start)

	if next, ok := nextStart(start, active); ok {
		untilNext := next.Sub(start) - policy.NextBookingBufferMinutes
		if untilNext < limit {
			limit = untilNext
		}
	}

	if limit <= 0 {
		return 0
	}

	return limit - limit%policy.RoundingMinutes
}

// MaxDuration то же, что MaxDurationMinutes, в часах (кратно 0.5 при политике по умолчанию)
func MaxDuration(policy Policy, window Window, start types.TimeString, reservations []*domain.Reservation) float64 {
	return domain.MinutesToHours(MaxDurationMinutes(policy, window, start, reservations))
}

// FilterDurations оставляет варианты каталога не длиннее maxHours, по возрастанию.
// Пустой результат означает, что бронирование с этого старта невозможно.
func FilterDurations(catalog []domain.DurationOption, maxHours float64) []domain.DurationOption {
	maxMinutes := domain.HoursToMinutes(maxHours)

	result := make([]domain.DurationOption, 0, len(catalog))
	for _, opt := range catalog {
		if opt.Hours <= 0 {
			continue
		}
		if opt.Minutes() <= maxMinutes {
			result = append(result, opt)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Hours < result[j].Hours
	})

	return result
}

func nextStart(start types.TimeString, active []*domain.Reservation) (types.TimeString, bool) {
	var (
		next  types.TimeString
		found bool
	)
	for _, r := range active {
		if r.StartTime.IsAfter(start) && (!found || r.StartTime.IsBefore(next)) {
			next = r.StartTime
			found = true
		}
	}
	return next, found
}
