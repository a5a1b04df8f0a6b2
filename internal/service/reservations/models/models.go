package models

import (
	"time"

	"github.com/m04kA/BilliardBookingService/internal/domain"
)

// Request модели

// GetTableReservationsRequest запрос броней стола на дату
type GetTableReservationsRequest struct {
	TableID         int64   `json:"tableId"`
	Date            string  `json:"date"`             // "2025-10-20"
	Status          *string `json:"status,omitempty"` // фильтр по статусу (опционально)
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса брони
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID            int64   `json:"id"`
	TableID       int64   `json:"tableId"`
	Date          string  `json:"date"`      // "2025-10-20"
	StartTime     string  `json:"startTime"` // "14:00:00"
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
	Status        string  `json:"status"`

	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedBy     *int64  `json:"createdBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:            r.ID,
		TableID:       r.TableID,
		Date:          r.Date.String(),
		StartTime:     r.StartTime.String(),
		EndTime:       r.EndTime.String(),
		DurationHours: r.DurationHours,
		Status:        string(r.Status),
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}
