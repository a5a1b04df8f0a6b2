package check_slot_bookable

import (
	"strconv"

	checkSlot "github.com/m04kA/BilliardBookingService/internal/usecase/check_slot_bookable"
)

// BookableResponse HTTP response model
type BookableResponse struct {
	TableID       int64   `json:"tableId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	DurationHours float64 `json:"durationHours"`
	Availability  string  `json:"availability"` // available | unavailable | unknown
	Bookable      bool    `json:"bookable"`
}

// ToUseCaseRequest формирует запрос к use case, разбирая длительность
func ToUseCaseRequest(tableID int64, date, startTime, duration string) (*checkSlot.Request, error) {
	hours, err := strconv.ParseFloat(duration, 64)
	if err != nil {
		return nil, err
	}

	return &checkSlot.Request{
		TableID:       tableID,
		Date:          date,
		StartTime:     startTime,
		DurationHours: hours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlot.Response) *BookableResponse {
	return &BookableResponse{
		TableID:       resp.TableID,
		Date:          resp.Date.String(),
		StartTime:     resp.StartTime.String(),
		DurationHours: resp.DurationHours,
		Availability:  string(resp.Availability),
		Bookable:      resp.Bookable(),
	}
}
