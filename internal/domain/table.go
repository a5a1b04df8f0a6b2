package domain

import "time"

// Table kinds
const (
	TableKindPool    = "pool"
	TableKindSnooker = "snooker"
	TableKindCarom   = "carom"
)

// Table represents a billiard table of the venue
type Table struct {
	ID        int64
	Name      string
	Kind      string
	IsActive  bool
	CreatedAt time.Time
}

// IsValidTableKind checks that kind is one of the known table kinds
func IsValidTableKind(kind string) bool {
	switch kind {
	case TableKindPool, TableKindSnooker, TableKindCarom:
		return true
	}
	return false
}
