package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание дня недели не задано
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrClosedDateNotFound возвращается, когда дата не отмечена закрытой
	ErrClosedDateNotFound = errors.New("schedule.repository: closed date not found")

	// ErrClosedDateExists возвращается при повторном закрытии той же даты
	ErrClosedDateExists = errors.New("schedule.repository: closed date already exists")

	// ErrInvalidWindow возвращается, когда время открытия не раньше времени закрытия (check constraint)
	ErrInvalidWindow = errors.New("schedule.repository: open time must be before close time")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
