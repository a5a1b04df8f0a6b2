package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с активной бронью (exclusion constraint)
	ErrSlotNotAvailable = errors.New("reservation.repository: slot not available")

	// ErrConcurrentUpdate возвращается при конфликте сериализуемых транзакций
	ErrConcurrentUpdate = errors.New("reservation.repository: concurrent update")

	// ErrTableNotFound возвращается, когда бронь ссылается на несуществующий стол
	ErrTableNotFound = errors.New("reservation.repository: table not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
