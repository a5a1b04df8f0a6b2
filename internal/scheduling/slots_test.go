package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

const today = "2025-10-18"

func TestResolveWindow(t *testing.T) {
	date := types.MustDate(today) // суббота
	open := &domain.OperatingSchedule{
		Weekday:   time.Saturday,
		OpenTime:  ts("09:00"),
		CloseTime: ts("22:00"),
		IsActive:  true,
	}

	w, ok, err := ResolveWindow(date, open, false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, window("09:00", "22:00"), w)

	tests := []struct {
		name     string
		schedule *domain.OperatingSchedule
		closed   bool
	}{
		{name: "closed date", schedule: open, closed: true},
		{name: "no schedule", schedule: nil},
		{name: "inactive", schedule: &domain.OperatingSchedule{Weekday: time.Saturday, OpenTime: ts("09:00"), CloseTime: ts("22:00")}},
		{name: "closed override", schedule: &domain.OperatingSchedule{Weekday: time.Saturday, OpenTime: ts("09:00"), CloseTime: ts("22:00"), IsActive: true, IsClosedOverride: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := ResolveWindow(date, tt.schedule, tt.closed)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestResolveWindow_Invalid(t *testing.T) {
	date := types.MustDate(today)

	_, _, err := ResolveWindow(date, &domain.OperatingSchedule{
		Weekday: time.Saturday, OpenTime: ts("22:00"), CloseTime: ts("09:00"), IsActive: true,
	}, false)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, _, err = ResolveWindow(date, &domain.OperatingSchedule{
		Weekday: time.Monday, OpenTime: ts("09:00"), CloseTime: ts("22:00"), IsActive: true,
	}, false)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots := GenerateSlots(DefaultPolicy(), window("09:00", "22:00"), types.MustDate(today), at(today, "08:00"))

	require.Len(t, slots, 26)
	assert.Equal(t, "09:00:00", slots[0].CanonicalTime.String())
	assert.Equal(t, "9:00 AM", slots[0].Label)
	assert.Equal(t, "21:30:00", slots[len(slots)-1].CanonicalTime.String())
	assert.Equal(t, "9:30 PM", slots[len(slots)-1].Label)

	for _, s := range slots {
		assert.False(t, s.IsPast)
	}
}

func TestGenerateSlots_AlignedBeforeClose(t *testing.T) {
	policy := DefaultPolicy()
	windows := []Window{
		window("09:00", "22:00"),
		window("09:15", "21:45"),
		window("10:00", "10:30"),
		window("10:00", "10:29"),
		window("00:00", "24:00"),
		window("18:00", "23:59"),
	}

	for _, w := range windows {
		slots := GenerateSlots(policy, w, types.MustDate("2030-01-01"), at(today, "12:00"))
		for i, s := range slots {
			assert.Zero(t, s.CanonicalTime.Sub(w.Open)%30, "aligned to open: %s", s.CanonicalTime)
			assert.True(t, s.CanonicalTime.IsBefore(w.Close))
			assert.GreaterOrEqual(t, w.Close.Sub(s.CanonicalTime), 30)
			if i > 0 {
				assert.Equal(t, 30, s.CanonicalTime.Sub(slots[i-1].CanonicalTime))
			}
		}
		// следующий шаг после последнего слота уже не помещается
		if len(slots) > 0 {
			last := slots[len(slots)-1].CanonicalTime
			assert.Less(t, w.Close.Sub(last)-30, 30)
		}
	}

	assert.Len(t, GenerateSlots(policy, window("10:00", "10:29"), types.MustDate(today), at(today, "08:00")), 0)
	assert.Len(t, GenerateSlots(policy, window("10:00", "10:30"), types.MustDate(today), at(today, "08:00")), 1)
	assert.Len(t, GenerateSlots(policy, window("00:00", "24:00"), types.MustDate(today), at(today, "00:00")), 48)
}

func TestGenerateSlots_Past(t *testing.T) {
	policy := DefaultPolicy()
	w := window("09:00", "22:00")

	t.Run("today", func(t *testing.T) {
		slots := GenerateSlots(policy, w, types.MustDate(today), at(today, "12:10"))

		s, _ := slotByTime(slots, "12:00")
		assert.True(t, s.IsPast)
		s, _ = slotByTime(slots, "12:30")
		assert.False(t, s.IsPast)
	})

	t.Run("exactly now is past", func(t *testing.T) {
		slots := GenerateSlots(policy, w, types.MustDate(today), at(today, "12:30"))

		s, _ := slotByTime(slots, "12:30")
		assert.True(t, s.IsPast)
		s, _ = slotByTime(slots, "13:00")
		assert.False(t, s.IsPast)
	})

	t.Run("yesterday", func(t *testing.T) {
		slots := GenerateSlots(policy, w, types.MustDate("2025-10-17"), at(today, "08:00"))
		for _, s := range slots {
			assert.True(t, s.IsPast)
		}
	})

	t.Run("tomorrow", func(t *testing.T) {
		slots := GenerateSlots(policy, w, types.MustDate("2025-10-19"), at(today, "23:50"))
		for _, s := range slots {
			assert.False(t, s.IsPast)
		}
	})

	t.Run("venue location decides today", func(t *testing.T) {
		loc := time.FixedZone("UTC+8", 8*60*60)
		// 20:30 UTC 17-го это 04:30 18-го по времени площадки
		now := time.Date(2025, 10, 17, 20, 30, 0, 0, time.UTC).In(loc)
		slots := GenerateSlots(policy, w, types.MustDate(today), now)
		for _, s := range slots {
			assert.False(t, s.IsPast)
		}
	})
}

func TestSlots_Idempotent(t *testing.T) {
	reservations := []*domain.Reservation{reservation(1, "14:00", "16:00", domain.StatusApproved)}
	snap := NewSnapshot(DefaultPolicy(), 1, types.MustDate(today), window("09:00", "22:00"), true, reservations)

	first := snap.Slots(at(today, "10:05"))
	second := snap.Slots(at(today, "10:05"))

	assert.Equal(t, first, second)
}
