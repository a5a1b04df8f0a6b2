package get_max_duration

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("get_max_duration: table not found")

	// ErrUpstreamUnavailable возвращается, когда расписание или брони не удалось прочитать
	ErrUpstreamUnavailable = errors.New("get_max_duration: availability data unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_max_duration: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_max_duration: internal error")
)
