package models

import (
	"time"

	"github.com/m04kA/BilliardBookingService/internal/domain"
)

// Request модели

// UpdateScheduleRequest запрос на изменение расписания дня недели
type UpdateScheduleRequest struct {
	OpenTime         string `json:"openTime"`  // "10:00" или "10:00:00"
	CloseTime        string `json:"closeTime"` // "24:00" допустимо
	IsActive         *bool  `json:"isActive,omitempty"`
	IsClosedOverride *bool  `json:"isClosedOverride,omitempty"`
}

// AddClosedDateRequest запрос на закрытие даты
type AddClosedDateRequest struct {
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// ListClosedDatesRequest фильтр закрытых дат, границы опциональны
type ListClosedDatesRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Response модели

// ScheduleResponse расписание одного дня недели
type ScheduleResponse struct {
	Weekday          string    `json:"weekday"` // "Monday"
	OpenTime         string    `json:"openTime"`
	CloseTime        string    `json:"closeTime"`
	IsActive         bool      `json:"isActive"`
	IsClosedOverride bool      `json:"isClosedOverride"`
	IsOpen           bool      `json:"isOpen"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ScheduleListResponse расписание на неделю
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// ClosedDateResponse закрытая дата
type ClosedDateResponse struct {
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClosedDateListResponse список закрытых дат
type ClosedDateListResponse struct {
	ClosedDates []ClosedDateResponse `json:"closedDates"`
}

// TableResponse бильярдный стол
type TableResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	IsActive bool   `json:"isActive"`
}

// TableListResponse список столов
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.OperatingSchedule) ScheduleResponse {
	return ScheduleResponse{
		Weekday:          s.Weekday.String(),
		OpenTime:         s.OpenTime.String(),
		CloseTime:        s.CloseTime.String(),
		IsActive:         s.IsActive,
		IsClosedOverride: s.IsClosedOverride,
		IsOpen:           s.IsOpen(),
		UpdatedAt:        s.UpdatedAt,
	}
}

// FromDomainClosedDate конвертирует domain модель в DTO
func FromDomainClosedDate(c *domain.ClosedDate) ClosedDateResponse {
	return ClosedDateResponse{
		Date:      c.Date.String(),
		Reason:    c.Reason,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainTable конвертирует domain модель в DTO
func FromDomainTable(t *domain.Table) TableResponse {
	return TableResponse{
		ID:       t.ID,
		Name:     t.Name,
		Kind:     t.Kind,
		IsActive: t.IsActive,
	}
}
