package scheduling

import (
	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// Evaluate размечает слоты по занятости. Входной срез не изменяется.
//
// Для каждого слота:
//  1. занят, если start <= слот < end для любой активной брони;
//  2. иначе проверяется разрыв от последней занятой границы (открытие или конец
//     активной брони, закончившейся не позже слота) по правилу политики;
//  3. иначе слот доступен, если он не в прошлом.
//
// Неактивные брони (отмененные, завершенные) игнорируются.
func Evaluate(policy Policy, window Window, slots []domain.CandidateSlot, reservations []*domain.Reservation) []domain.CandidateSlot {
	active := activeOnly(reservations)

	result := make([]domain.CandidateSlot, len(slots))
	for i, slot := range slots {
		s := slot
		s.IsReserved = false
		s.HasGapIssue = false
		s.IsAvailable = false

		switch {
		case isReserved(s.CanonicalTime, active):
			s.IsReserved = true
		case policy.isGapBlocked(s.CanonicalTime.Sub(latestBoundary(window, s.CanonicalTime, active))):
			s.HasGapIssue = true
		default:
			s.IsAvailable = !s.IsPast
		}

		result[i] = s
	}

	return result
}

// isReserved возвращает true, если время попадает в [start, end) активной брони
func isReserved(t types.TimeString, active []*domain.Reservation) bool {
	for _, r := range active {
		if !t.IsBefore(r.StartTime) && t.IsBefore(r.EndTime) {
			return true
		}
	}
	return false
}

// latestBoundary последняя занятая граница не позже t: открытие или конец брони
func latestBoundary(window Window, t types.TimeString, active []*domain.Reservation) types.TimeString {
	boundary := window.Open
	for _, r := range active {
		if !r.EndTime.IsAfter(t) && r.EndTime.IsAfter(boundary) {
			boundary = r.EndTime
		}
	}
	return boundary
}

func activeOnly(reservations []*domain.Reservation) []*domain.Reservation {
	active := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r != nil && r.IsActive() {
			active = append(active, r)
		}
	}
	return active
}
