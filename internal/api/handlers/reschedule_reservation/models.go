package reschedule_reservation

import (
	"time"

	rescheduleReservation "github.com/m04kA/BilliardBookingService/internal/usecase/reschedule_reservation"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	DurationHours *float64 `json:"durationHours,omitempty"` // без поля длительность не меняется
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	ID                int64   `json:"id"`
	TableID           int64   `json:"tableId"`
	Date              string  `json:"date"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	DurationHours     float64 `json:"durationHours"`
	Status            string  `json:"status"`
	PreviousDate      string  `json:"previousDate"`
	PreviousStartTime string  `json:"previousStartTime"`
	CustomerName      string  `json:"customerName"`
	CustomerPhone     *string `json:"customerPhone,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	UpdatedAt         string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(reservationID, userID int64) *rescheduleReservation.Request {
	return &rescheduleReservation.Request{
		ReservationID: reservationID,
		UserID:        userID,
		Date:          r.Date,
		StartTime:     r.StartTime,
		DurationHours: r.DurationHours,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleReservation.Response) *RescheduleResponse {
	return &RescheduleResponse{
		ID:                resp.ID,
		TableID:           resp.TableID,
		Date:              resp.Date.String(),
		StartTime:         resp.StartTime.String(),
		EndTime:           resp.EndTime.String(),
		DurationHours:     resp.DurationHours,
		Status:            resp.Status,
		PreviousDate:      resp.PreviousDate.String(),
		PreviousStartTime: resp.PreviousStartTime.String(),
		CustomerName:      resp.CustomerName,
		CustomerPhone:     resp.CustomerPhone,
		Notes:             resp.Notes,
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
