package list_available_slots

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("list_available_slots: table not found")

	// ErrUpstreamUnavailable возвращается, когда расписание или брони не удалось прочитать.
	// Слоты в этом случае не возвращаются вовсе.
	ErrUpstreamUnavailable = errors.New("list_available_slots: availability data unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("list_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_available_slots: internal error")
)
