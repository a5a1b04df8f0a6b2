package list_available_slots

import (
	listSlots "github.com/m04kA/BilliardBookingService/internal/usecase/list_available_slots"
)

// SlotResponse слот сетки
type SlotResponse struct {
	Time        string `json:"time"`  // "14:30:00"
	Label       string `json:"label"` // "2:30 PM"
	IsPast      bool   `json:"isPast"`
	IsAvailable bool   `json:"isAvailable"`
	IsReserved  bool   `json:"isReserved"`
	HasGapIssue bool   `json:"hasGapIssue"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	TableID        int64          `json:"tableId"`
	Date           string         `json:"date"`
	Closed         bool           `json:"closed"`
	AvailableCount int            `json:"availableCount"`
	Slots          []SlotResponse `json:"slots"`
}

// ToUseCaseRequest формирует запрос к use case
func ToUseCaseRequest(tableID int64, date string) *listSlots.Request {
	return &listSlots.Request{
		TableID: tableID,
		Date:    date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:        s.CanonicalTime.String(),
			Label:       s.Label,
			IsPast:      s.IsPast,
			IsAvailable: s.IsAvailable,
			IsReserved:  s.IsReserved,
			HasGapIssue: s.HasGapIssue,
		})
	}

	return &SlotsResponse{
		TableID:        resp.TableID,
		Date:           resp.Date.String(),
		Closed:         resp.Closed,
		AvailableCount: resp.AvailableCount(),
		Slots:          slots,
	}
}
