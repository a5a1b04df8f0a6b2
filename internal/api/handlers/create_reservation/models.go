package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/BilliardBookingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TableID       int64   `json:"tableId"`
	Date          string  `json:"date"`      // "2025-10-20"
	StartTime     string  `json:"startTime"` // "14:00"
	DurationHours float64 `json:"durationHours"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64   `json:"id"`
	TableID       int64   `json:"tableId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
	Status        string  `json:"status"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedBy     *int64  `json:"createdBy,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) *createReservation.Request {
	return &createReservation.Request{
		UserID:        userID,
		TableID:       r.TableID,
		Date:          r.Date,
		StartTime:     r.StartTime,
		DurationHours: r.DurationHours,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		TableID:       resp.TableID,
		Date:          resp.Date.String(),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		DurationHours: resp.DurationHours,
		Status:        resp.Status,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		Notes:         resp.Notes,
		CreatedBy:     resp.CreatedBy,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
