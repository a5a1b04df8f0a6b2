package list_available_slots

import (
	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// Request модель запроса сетки слотов
type Request struct {
	TableID int64  // ID стола
	Date    string // Дата "YYYY-MM-DD"
}

// Response модель ответа с размеченной сеткой слотов
type Response struct {
	TableID int64
	Date    types.Date
	Closed  bool                   // площадка закрыта или стол выведен из работы
	Slots   []domain.CandidateSlot // пустой список для закрытого дня
}

// AvailableCount количество слотов, доступных для бронирования
func (r *Response) AvailableCount() int {
	count := 0
	for _, s := range r.Slots {
		if s.IsAvailable {
			count++
		}
	}
	return count
}
