package domain

import (
	"strings"
	"time"

	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// OperatingSchedule represents the opening hours of the venue for one weekday
type OperatingSchedule struct {
	ID               int64
	Weekday          time.Weekday
	OpenTime         types.TimeString
	CloseTime        types.TimeString
	IsActive         bool
	IsClosedOverride bool // день закрыт, хотя запись активна
	UpdatedAt        time.Time
}

// IsOpen returns true if the schedule yields an opening window
func (s *OperatingSchedule) IsOpen() bool {
	return s.IsActive && !s.IsClosedOverride
}

// ClosedDate represents a calendar date when the venue is fully closed
type ClosedDate struct {
	Date      types.Date
	Reason    *string
	CreatedAt time.Time
}

// ParseWeekday parses an English weekday name ("Monday", "monday")
func ParseWeekday(name string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), strings.TrimSpace(name)) {
			return d, true
		}
	}
	return time.Sunday, false
}
