package get_max_duration

import (
	getMaxDuration "github.com/m04kA/BilliardBookingService/internal/usecase/get_max_duration"
)

// DurationOptionResponse вариант длительности из каталога
type DurationOptionResponse struct {
	ID    int64   `json:"id"`
	Hours float64 `json:"hours"`
}

// MaxDurationResponse HTTP response model
type MaxDurationResponse struct {
	TableID   int64                    `json:"tableId"`
	Date      string                   `json:"date"`
	StartTime string                   `json:"startTime"`
	MaxHours  float64                  `json:"maxHours"`
	Bookable  bool                     `json:"bookable"`
	Durations []DurationOptionResponse `json:"durations"`
}

// ToUseCaseRequest формирует запрос к use case
func ToUseCaseRequest(tableID int64, date, startTime string) *getMaxDuration.Request {
	return &getMaxDuration.Request{
		TableID:   tableID,
		Date:      date,
		StartTime: startTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMaxDuration.Response) *MaxDurationResponse {
	durations := make([]DurationOptionResponse, 0, len(resp.Durations))
	for _, d := range resp.Durations {
		durations = append(durations, DurationOptionResponse{ID: d.ID, Hours: d.Hours})
	}

	return &MaxDurationResponse{
		TableID:   resp.TableID,
		Date:      resp.Date.String(),
		StartTime: resp.StartTime.String(),
		MaxHours:  resp.MaxHours,
		Bookable:  len(durations) > 0,
		Durations: durations,
	}
}
