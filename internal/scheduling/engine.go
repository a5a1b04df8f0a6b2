package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// ErrUpstreamUnavailable возвращается, когда расписание или брони не удалось прочитать.
// Движок в этом случае ничего не считает доступным.
var ErrUpstreamUnavailable = errors.New("scheduling: schedule or reservation source unavailable")

// ScheduleSource источник расписания работы площадки
type ScheduleSource interface {
	// GetSchedule возвращает расписание дня недели или nil, если его нет
	GetSchedule(ctx context.Context, weekday time.Weekday) (*domain.OperatingSchedule, error)
	IsDateClosed(ctx context.Context, date types.Date) (bool, error)
}

// ReservationSource источник активных броней стола на дату
// (без статусов cancelled, completed, synced)
type ReservationSource interface {
	GetActiveReservations(ctx context.Context, tableID int64, date types.Date) ([]*domain.Reservation, error)
}

// Snapshot согласованный снимок данных стола на дату. Все методы чистые.
type Snapshot struct {
	TableID      int64
	Date         types.Date
	Open         bool
	Window       Window
	Reservations []*domain.Reservation

	policy Policy
}

// NewSnapshot собирает снимок из уже полученных данных
func NewSnapshot(policy Policy, tableID int64, date types.Date, window Window, open bool, reservations []*domain.Reservation) *Snapshot {
	return &Snapshot{
		TableID:      tableID,
		Date:         date,
		Open:         open,
		Window:       window,
		Reservations: reservations,
		policy:       policy,
	}
}

// Slots размеченная сетка слотов. Для закрытого дня пустой список.
func (s *Snapshot) Slots(now time.Time) []domain.CandidateSlot {
	if !s.Open {
		return []domain.CandidateSlot{}
	}
	return Evaluate(s.policy, s.Window, GenerateSlots(s.policy, s.Window, s.Date, now), s.Reservations)
}

// MaxDuration максимальная длительность в часах от start
func (s *Snapshot) MaxDuration(start types.TimeString) float64 {
	if !s.Open {
		return 0
	}
	return MaxDuration(s.policy, s.Window, start, s.Reservations)
}

// Bookable проверка пересечений и попадания в окно
func (s *Snapshot) Bookable(start types.TimeString, minutes int) bool {
	if !s.Open {
		return false
	}
	return IsBookable(s.Window, start, minutes, s.Reservations)
}

// CheckBooking строгая проверка перед записью брони
func (s *Snapshot) CheckBooking(start types.TimeString, minutes int, now time.Time) error {
	if !s.Open {
		return fmt.Errorf("%w: %s", ErrClosed, s.Date)
	}
	return CheckBooking(s.policy, s.Window, s.Date, start, minutes, s.Reservations, now)
}

// Without возвращает копию снимка без брони id (для переноса брони на другое время)
func (s *Snapshot) Without(id int64) *Snapshot {
	filtered := make([]*domain.Reservation, 0, len(s.Reservations))
	for _, r := range s.Reservations {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	c := *s
	c.Reservations = filtered
	return &c
}

// Decision результат проверки доступности с тремя состояниями
type Decision struct {
	Availability domain.Availability
	Err          error // причина для Unknown
}

// Engine движок доступности столов. Не хранит состояния между вызовами.
type Engine struct {
	schedules    ScheduleSource
	reservations ReservationSource
	policy       Policy
}

// NewEngine создает движок
func NewEngine(schedules ScheduleSource, reservations ReservationSource, policy Policy) *Engine {
	return &Engine{
		schedules:    schedules,
		reservations: reservations,
		policy:       policy,
	}
}

// Policy политика движка
func (e *Engine) Policy() Policy {
	return e.policy
}

// Snapshot читает расписание и активные брони стола на дату.
// Любая ошибка чтения оборачивается в ErrUpstreamUnavailable.
// Внутри транзакции брони читаются с блокировкой (см. репозиторий).
func (e *Engine) Snapshot(ctx context.Context, tableID int64, date types.Date) (*Snapshot, error) {
	closed, err := e.schedules.IsDateClosed(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: closed dates: %v", ErrUpstreamUnavailable, err)
	}

	var schedule *domain.OperatingSchedule
	if !closed {
		schedule, err = e.schedules.GetSchedule(ctx, date.Weekday())
		if err != nil {
			return nil, fmt.Errorf("%w: schedule: %v", ErrUpstreamUnavailable, err)
		}
	}

	window, open, err := ResolveWindow(date, schedule, closed)
	if err != nil {
		return nil, err
	}
	if !open {
		return NewSnapshot(e.policy, tableID, date, Window{}, false, nil), nil
	}

	reservations, err := e.reservations.GetActiveReservations(ctx, tableID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: reservations: %v", ErrUpstreamUnavailable, err)
	}

	return NewSnapshot(e.policy, tableID, date, window, true, reservations), nil
}

// ListAvailableSlots сетка слотов стола на дату с разметкой доступности
func (e *Engine) ListAvailableSlots(ctx context.Context, tableID int64, date types.Date, now time.Time) ([]domain.CandidateSlot, error) {
	snap, err := e.Snapshot(ctx, tableID, date)
	if err != nil {
		return nil, err
	}
	return snap.Slots(now), nil
}

// MaxDuration максимальная длительность сессии в часах от start
func (e *Engine) MaxDuration(ctx context.Context, tableID int64, date types.Date, start types.TimeString) (float64, error) {
	snap, err := e.Snapshot(ctx, tableID, date)
	if err != nil {
		return 0, err
	}
	return snap.MaxDuration(start), nil
}

// IsSlotBookable проверяет, свободен ли интервал [start, start+durationHours) внутри окна работы.
// Ошибка чтения данных дает AvailabilityUnknown, а не "доступно".
func (e *Engine) IsSlotBookable(ctx context.Context, tableID int64, date types.Date, start types.TimeString, durationHours float64) Decision {
	snap, err := e.Snapshot(ctx, tableID, date)
	if err != nil {
		return Decision{Availability: domain.AvailabilityUnknown, Err: err}
	}

	if snap.Bookable(start, domain.HoursToMinutes(durationHours)) {
		return Decision{Availability: domain.AvailabilityAvailable}
	}
	return Decision{Availability: domain.AvailabilityUnavailable}
}
