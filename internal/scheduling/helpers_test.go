package scheduling

import (
	"time"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

func ts(s string) types.TimeString {
	return types.MustTimeString(s)
}

func window(open, close string) Window {
	return Window{Open: ts(open), Close: ts(close)}
}

func reservation(id int64, start, end string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		TableID:   1,
		StartTime: ts(start),
		EndTime:   ts(end),
		Status:    status,
	}
}

// at возвращает момент времени в дату d и время hh:mm в UTC
func at(d string, clock string) time.Time {
	date := types.MustDate(d)
	t := ts(clock)
	return time.Date(date.Year(), date.Month(), date.Day(), t.Minutes()/60, t.Minutes()%60, 0, 0, time.UTC)
}

func slotByTime(slots []domain.CandidateSlot, clock string) (domain.CandidateSlot, bool) {
	for _, s := range slots {
		if s.CanonicalTime.Equal(ts(clock)) {
			return s, true
		}
	}
	return domain.CandidateSlot{}, false
}
