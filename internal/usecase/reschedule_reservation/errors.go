package reschedule_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")

	// ErrCannotReschedule возвращается, когда бронь в статусе, не допускающем перенос
	ErrCannotReschedule = errors.New("reschedule_reservation: reservation cannot be rescheduled in its current status")

	// ErrTableInactive возвращается, когда стол брони выведен из работы
	ErrTableInactive = errors.New("reschedule_reservation: table is not in service")

	// ErrVenueClosed возвращается, когда площадка закрыта в новую дату
	ErrVenueClosed = errors.New("reschedule_reservation: venue is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда новый старт не на сетке или вне часов работы
	ErrInvalidTimeSlot = errors.New("reschedule_reservation: invalid time slot")

	// ErrSlotInPast возвращается при переносе в прошлое
	ErrSlotInPast = errors.New("reschedule_reservation: slot is in the past")

	// ErrSlotNotAvailable возвращается, когда новый интервал занят
	ErrSlotNotAvailable = errors.New("reschedule_reservation: slot is not available")

	// ErrGapNotAllowed возвращается, когда перенос оставил бы непродаваемый разрыв
	ErrGapNotAllowed = errors.New("reschedule_reservation: slot would leave an unusable gap")

	// ErrDurationTooLong возвращается, когда длительность больше максимальной для нового старта
	ErrDurationTooLong = errors.New("reschedule_reservation: duration exceeds maximum for this start")

	// ErrConcurrentUpdate возвращается при конфликте параллельных транзакций
	ErrConcurrentUpdate = errors.New("reschedule_reservation: concurrent reservation, retry")

	// ErrUpstreamUnavailable возвращается, когда расписание или брони не удалось прочитать
	ErrUpstreamUnavailable = errors.New("reschedule_reservation: availability data unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_reservation: internal error")
)
