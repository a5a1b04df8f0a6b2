package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

func TestIsBookable(t *testing.T) {
	w := window("09:00", "22:00")
	reservations := []*domain.Reservation{
		reservation(1, "14:00", "16:00", domain.StatusApproved),
		reservation(2, "18:00", "19:00", domain.StatusCancelled),
	}

	tests := []struct {
		name    string
		start   string
		minutes int
		want    bool
	}{
		{name: "free morning", start: "10:00", minutes: 120, want: true},
		{name: "ends at reservation start", start: "12:00", minutes: 120, want: true},
		{name: "starts at reservation end", start: "16:00", minutes: 60, want: true},
		{name: "overlaps start", start: "13:30", minutes: 60, want: false},
		{name: "inside reservation", start: "14:30", minutes: 30, want: false},
		{name: "covers reservation", start: "13:00", minutes: 240, want: false},
		{name: "over cancelled reservation", start: "18:00", minutes: 60, want: true},
		{name: "ends at close", start: "21:00", minutes: 60, want: true},
		{name: "past close", start: "21:30", minutes: 60, want: false},
		{name: "before open", start: "08:30", minutes: 60, want: false},
		{name: "zero duration", start: "10:00", minutes: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBookable(w, ts(tt.start), tt.minutes, reservations))
		})
	}
}

func TestCheckBooking(t *testing.T) {
	policy := DefaultPolicy()
	w := window("09:00", "22:00")
	date := types.MustDate(today)
	now := at(today, "10:10")
	reservations := []*domain.Reservation{reservation(1, "14:00", "16:00", domain.StatusApproved)}

	tests := []struct {
		name    string
		start   string
		minutes int
		wantErr error
	}{
		{name: "ok", start: "11:00", minutes: 120},
		{name: "ok after reservation", start: "16:00", minutes: 180},
		{name: "ok quarter hours", start: "11:00", minutes: 105},
		{name: "past", start: "10:00", minutes: 60, wantErr: ErrSlotPast},
		{name: "off grid", start: "11:15", minutes: 60, wantErr: ErrOffGrid},
		{name: "before open", start: "08:00", minutes: 60, wantErr: ErrOutsideWindow},
		{name: "no trailing window", start: "21:45", minutes: 15, wantErr: ErrOutsideWindow},
		{name: "past close", start: "21:00", minutes: 90, wantErr: ErrOutsideWindow},
		{name: "reserved", start: "14:30", minutes: 60, wantErr: ErrSlotReserved},
		{name: "gap after reservation", start: "16:30", minutes: 60, wantErr: ErrGapBlocked},
		{name: "overlaps next", start: "13:00", minutes: 90, wantErr: ErrConflict},
		{name: "within buffer of next", start: "12:00", minutes: 90, wantErr: ErrDurationExceedsMax},
		{name: "exactly max", start: "11:00", minutes: 120},
		{name: "over max", start: "11:00", minutes: 150, wantErr: ErrDurationExceedsMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBooking(policy, w, date, ts(tt.start), tt.minutes, reservations, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
