package domain

import "github.com/m04kA/BilliardBookingService/pkg/types"

// CandidateSlot represents a start time on the slot grid annotated with availability.
// Produced on every query, never persisted.
type CandidateSlot struct {
	Label         string           // "2:30 PM", только для отображения
	CanonicalTime types.TimeString // 24-часовое время, используется во всех сравнениях
	IsPast        bool
	IsAvailable   bool
	IsReserved    bool
	HasGapIssue   bool
}

// Availability tri-state result of a bookability check
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
	// AvailabilityUnknown данные не удалось получить, вызывающий обязан считать слот недоступным
	AvailabilityUnknown Availability = "unknown"
)

// IsBookable returns true only for a definite positive answer
func (a Availability) IsBookable() bool {
	return a == AvailabilityAvailable
}
