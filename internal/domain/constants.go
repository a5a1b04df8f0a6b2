package domain

// Business validation constants
const (
	DurationResolutionMinutes = 15 // длительность брони задается с шагом 0.25 часа
	MaxReservationHours       = 12
	MaxCustomerNameLength     = 100
	MaxNotesLength            = 500
	MaxClosedReasonLength     = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, которые не занимают стол.
// Используется для фильтрации при построении снимка бронирований.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusCompleted,
	StatusSynced,
}

// ActiveStatuses список статусов, которые занимают стол
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusApproved,
	StatusRescheduled,
	StatusOngoing,
}

// AllStatuses все известные статусы
var AllStatuses = []ReservationStatus{
	StatusPending,
	StatusApproved,
	StatusRescheduled,
	StatusOngoing,
	StatusCompleted,
	StatusCancelled,
	StatusSynced,
}
