package domain

import (
	"time"

	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// ReservationStatus represents the status of a table reservation
type ReservationStatus string

const (
	StatusPending     ReservationStatus = "pending"
	StatusApproved    ReservationStatus = "approved"
	StatusRescheduled ReservationStatus = "rescheduled"
	StatusOngoing     ReservationStatus = "ongoing"
	StatusCompleted   ReservationStatus = "completed"
	StatusCancelled   ReservationStatus = "cancelled"
	StatusSynced      ReservationStatus = "synced"
)

// Reservation represents a booking of a billiard table for a time interval on a date
type Reservation struct {
	ID            int64
	TableID       int64
	Date          types.Date
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours float64 // шаг 0.25 часа
	Status        ReservationStatus

	CustomerName  string
	CustomerPhone *string
	Notes         *string
	CreatedBy     *int64 // сотрудник, оформивший бронь (X-User-ID)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies calendar time.
// Cancelled and settled (completed, synced) reservations free the table.
func (r *Reservation) IsActive() bool {
	return IsActiveStatus(r.Status)
}

// CanTransitionTo returns true if the status change is allowed
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	for _, s := range statusTransitions[r.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// CanBeRescheduled returns true if the reservation may be moved to another time
func (r *Reservation) CanBeRescheduled() bool {
	return r.Status == StatusPending || r.Status == StatusApproved || r.Status == StatusRescheduled
}

// Overlaps returns true if [start, end) intersects the reservation interval
func (r *Reservation) Overlaps(start, end types.TimeString) bool {
	return r.StartTime.IsBefore(end) && r.EndTime.IsAfter(start)
}

// IsActiveStatus returns true for statuses that hold a table
func IsActiveStatus(s ReservationStatus) bool {
	for _, inactive := range InactiveStatuses {
		if s == inactive {
			return false
		}
	}
	return true
}

// ParseReservationStatus converts a string to a known status
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	status := ReservationStatus(s)
	for _, known := range AllStatuses {
		if status == known {
			return status, true
		}
	}
	return "", false
}

// statusTransitions допустимые переходы статусов
var statusTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:     {StatusApproved, StatusCancelled},
	StatusApproved:    {StatusOngoing, StatusCancelled},
	StatusRescheduled: {StatusOngoing, StatusCancelled},
	StatusOngoing:     {StatusCompleted},
	StatusCompleted:   {StatusSynced},
}

// ReservationsFilter фильтр для выборки бронирований стола
type ReservationsFilter struct {
	TableID         int64
	Date            types.Date
	Status          *ReservationStatus
	IncludeInactive bool
}
