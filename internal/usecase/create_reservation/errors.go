package create_reservation

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("create_reservation: table not found")

	// ErrTableInactive возвращается, когда стол выведен из работы
	ErrTableInactive = errors.New("create_reservation: table is not in service")

	// ErrVenueClosed возвращается, когда площадка закрыта в указанную дату
	ErrVenueClosed = errors.New("create_reservation: venue is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда старт не на сетке или интервал выходит за часы работы
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotInPast возвращается при попытке забронировать прошедший слот
	ErrSlotInPast = errors.New("create_reservation: slot is in the past")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с активной бронью
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrGapNotAllowed возвращается, когда бронь оставила бы непродаваемый разрыв
	ErrGapNotAllowed = errors.New("create_reservation: slot would leave an unusable gap")

	// ErrDurationTooLong возвращается, когда длительность больше максимальной для этого старта
	ErrDurationTooLong = errors.New("create_reservation: duration exceeds maximum for this start")

	// ErrConcurrentUpdate возвращается, когда параллельная бронь заняла стол во время транзакции
	ErrConcurrentUpdate = errors.New("create_reservation: concurrent reservation, retry")

	// ErrUpstreamUnavailable возвращается, когда расписание или брони не удалось прочитать
	ErrUpstreamUnavailable = errors.New("create_reservation: availability data unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
