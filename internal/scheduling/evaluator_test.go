package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

const futureDate = "2025-10-20"

func evaluateDay(t *testing.T, policy Policy, reservations ...*domain.Reservation) []domain.CandidateSlot {
	t.Helper()
	w := window("09:00", "22:00")
	slots := GenerateSlots(policy, w, types.MustDate(futureDate), at(today, "08:00"))
	return Evaluate(policy, w, slots, reservations)
}

func TestEvaluate_ReservedAndGap(t *testing.T) {
	slots := evaluateDay(t, DefaultPolicy(), reservation(1, "14:00", "16:00", domain.StatusApproved))

	tests := []struct {
		clock     string
		available bool
		reserved  bool
		gap       bool
	}{
		{clock: "09:00", available: true},
		{clock: "09:30", gap: true}, // ровно 30 минут после открытия
		{clock: "10:00", available: true},
		{clock: "13:00", available: true},
		{clock: "13:30", available: true}, // граница позади это открытие, разрыв 270 минут
		{clock: "14:00", reserved: true},
		{clock: "14:30", reserved: true},
		{clock: "15:30", reserved: true},
		{clock: "16:00", available: true}, // вплотную к концу брони
		{clock: "16:30", gap: true},
		{clock: "17:00", available: true},
		{clock: "21:30", available: true},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			s, ok := slotByTime(slots, tt.clock)
			require.True(t, ok)
			assert.Equal(t, tt.available, s.IsAvailable, "available")
			assert.Equal(t, tt.reserved, s.IsReserved, "reserved")
			assert.Equal(t, tt.gap, s.HasGapIssue, "gap")
		})
	}
}

func TestEvaluate_ReservedSlotsNeverAvailable(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation(1, "10:00", "11:30", domain.StatusPending),
		reservation(2, "12:15", "13:45", domain.StatusOngoing),
		reservation(3, "19:00", "22:00", domain.StatusRescheduled),
	}
	slots := evaluateDay(t, DefaultPolicy(), reservations...)

	for _, s := range slots {
		for _, r := range reservations {
			if !s.CanonicalTime.IsBefore(r.StartTime) && s.CanonicalTime.IsBefore(r.EndTime) {
				assert.True(t, s.IsReserved, s.CanonicalTime.String())
				assert.False(t, s.IsAvailable, s.CanonicalTime.String())
			}
		}
	}
}

func TestEvaluate_LatestBoundaryWins(t *testing.T) {
	slots := evaluateDay(t, DefaultPolicy(),
		reservation(1, "10:00", "11:00", domain.StatusApproved),
		reservation(2, "11:00", "12:00", domain.StatusApproved),
	)

	s, _ := slotByTime(slots, "12:30")
	assert.True(t, s.HasGapIssue, "30 min after the later reservation end")

	s, _ = slotByTime(slots, "13:00")
	assert.True(t, s.IsAvailable)
	assert.False(t, s.HasGapIssue)
}

func TestEvaluate_OffGridReservationEnd(t *testing.T) {
	slots := evaluateDay(t, DefaultPolicy(), reservation(1, "10:00", "11:15", domain.StatusApproved))

	s, _ := slotByTime(slots, "11:00")
	assert.True(t, s.IsReserved)

	s, _ = slotByTime(slots, "11:30")
	assert.True(t, s.IsAvailable, "15 min gap is not the exact 30 min sliver")

	s, _ = slotByTime(slots, "12:00")
	assert.True(t, s.IsAvailable, "45 min gap")
}

func TestEvaluate_InactiveReservationsIgnored(t *testing.T) {
	slots := evaluateDay(t, DefaultPolicy(),
		reservation(1, "14:00", "16:00", domain.StatusCancelled),
		reservation(2, "17:00", "18:00", domain.StatusCompleted),
		reservation(3, "18:00", "19:00", domain.StatusSynced),
	)

	for _, clock := range []string{"14:00", "15:30", "17:00", "18:30"} {
		s, _ := slotByTime(slots, clock)
		assert.True(t, s.IsAvailable, clock)
		assert.False(t, s.IsReserved, clock)
	}

	s, _ := slotByTime(slots, "16:30")
	assert.False(t, s.HasGapIssue, "cancelled reservation end is not a boundary")
}

func TestEvaluate_BelowRule(t *testing.T) {
	policy := DefaultPolicy()
	policy.GapRule = GapRuleBelow
	policy.MinIdleGapMinutes = 60

	slots := evaluateDay(t, policy, reservation(1, "14:00", "16:00", domain.StatusApproved))

	s, _ := slotByTime(slots, "09:00")
	assert.True(t, s.IsAvailable, "adjacent to open")
	s, _ = slotByTime(slots, "09:30")
	assert.True(t, s.HasGapIssue)
	s, _ = slotByTime(slots, "10:00")
	assert.True(t, s.IsAvailable)
	s, _ = slotByTime(slots, "16:30")
	assert.True(t, s.HasGapIssue)
	s, _ = slotByTime(slots, "17:00")
	assert.True(t, s.IsAvailable, "exactly 60 min depends only on reservations")

	policy.MinIdleGapMinutes = 90
	slots = evaluateDay(t, policy, reservation(1, "14:00", "16:00", domain.StatusApproved))
	s, _ = slotByTime(slots, "17:00")
	assert.True(t, s.HasGapIssue)
	s, _ = slotByTime(slots, "17:30")
	assert.True(t, s.IsAvailable)
}

func TestEvaluate_PastNeverAvailable(t *testing.T) {
	policy := DefaultPolicy()
	w := window("09:00", "22:00")
	slots := Evaluate(policy, w, GenerateSlots(policy, w, types.MustDate(today), at(today, "13:05")), nil)

	s, _ := slotByTime(slots, "13:00")
	assert.True(t, s.IsPast)
	assert.False(t, s.IsAvailable)
	assert.False(t, s.IsReserved)

	s, _ = slotByTime(slots, "13:30")
	assert.True(t, s.IsAvailable)
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	policy := DefaultPolicy()
	w := window("09:00", "12:00")
	slots := GenerateSlots(policy, w, types.MustDate(futureDate), at(today, "08:00"))
	before := append([]domain.CandidateSlot(nil), slots...)

	_ = Evaluate(policy, w, slots, []*domain.Reservation{reservation(1, "10:00", "11:00", domain.StatusApproved)})

	assert.Equal(t, before, slots)
}
