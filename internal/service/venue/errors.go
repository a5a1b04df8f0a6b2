package venue

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание дня недели не задано
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrClosedDateNotFound возвращается, когда дата не отмечена закрытой
	ErrClosedDateNotFound = errors.New("closed date not found")

	// ErrClosedDateExists возвращается при повторном закрытии даты
	ErrClosedDateExists = errors.New("closed date already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
