package scheduling

import (
	"errors"
	"fmt"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// ErrInvalidSchedule возвращается, когда расписание дня не образует корректного окна
var ErrInvalidSchedule = errors.New("scheduling: invalid operating schedule")

// Window часы работы на конкретную дату, [Open, Close)
type Window struct {
	Open  types.TimeString
	Close types.TimeString
}

// Contains возвращает true, если интервал [start, end) лежит внутри окна
func (w Window) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.Open) && !end.IsAfter(w.Close) && start.IsBefore(end)
}

// ResolveWindow определяет окно работы на дату.
// Возвращает open=false, если дата закрыта, расписания нет, оно неактивно или помечено закрытым.
// Отсутствие расписания это не ошибка, а закрытый день.
func ResolveWindow(date types.Date, schedule *domain.OperatingSchedule, closed bool) (Window, bool, error) {
	if closed || schedule == nil || !schedule.IsOpen() {
		return Window{}, false, nil
	}

	if schedule.Weekday != date.Weekday() {
		return Window{}, false, fmt.Errorf("%w: schedule for %s applied to %s (%s)",
			ErrInvalidSchedule, schedule.Weekday, date, date.Weekday())
	}

	if err := schedule.OpenTime.Validate(); err != nil {
		return Window{}, false, fmt.Errorf("%w: open time: %v", ErrInvalidSchedule, err)
	}
	if err := schedule.CloseTime.Validate(); err != nil {
		return Window{}, false, fmt.Errorf("%w: close time: %v", ErrInvalidSchedule, err)
	}
	if !schedule.OpenTime.IsBefore(schedule.CloseTime) {
		return Window{}, false, fmt.Errorf("%w: open %s is not before close %s",
			ErrInvalidSchedule, schedule.OpenTime, schedule.CloseTime)
	}

	return Window{Open: schedule.OpenTime, Close: schedule.CloseTime}, true, nil
}
