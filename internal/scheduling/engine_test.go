package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

type fakeScheduleSource struct {
	schedules   map[time.Weekday]*domain.OperatingSchedule
	closedDates map[string]bool
	err         error
	closedErr   error

	requested []time.Weekday
}

func (f *fakeScheduleSource) GetSchedule(_ context.Context, weekday time.Weekday) (*domain.OperatingSchedule, error) {
	f.requested = append(f.requested, weekday)
	if f.err != nil {
		return nil, f.err
	}
	return f.schedules[weekday], nil
}

func (f *fakeScheduleSource) IsDateClosed(_ context.Context, date types.Date) (bool, error) {
	if f.closedErr != nil {
		return false, f.closedErr
	}
	return f.closedDates[date.String()], nil
}

type fakeReservationSource struct {
	reservations []*domain.Reservation
	err          error
	calls        int
}

func (f *fakeReservationSource) GetActiveReservations(_ context.Context, _ int64, _ types.Date) ([]*domain.Reservation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

func saturdaySchedule() *fakeScheduleSource {
	return &fakeScheduleSource{
		schedules: map[time.Weekday]*domain.OperatingSchedule{
			time.Saturday: {
				Weekday:   time.Saturday,
				OpenTime:  ts("09:00"),
				CloseTime: ts("22:00"),
				IsActive:  true,
			},
		},
		closedDates: map[string]bool{},
	}
}

func TestEngine_ListAvailableSlots(t *testing.T) {
	schedules := saturdaySchedule()
	reservations := &fakeReservationSource{
		reservations: []*domain.Reservation{reservation(1, "14:00", "16:00", domain.StatusApproved)},
	}
	engine := NewEngine(schedules, reservations, DefaultPolicy())

	slots, err := engine.ListAvailableSlots(context.Background(), 1, types.MustDate(today), at(today, "08:00"))
	require.NoError(t, err)

	require.Len(t, slots, 26)
	assert.Equal(t, []time.Weekday{time.Saturday}, schedules.requested)

	s, _ := slotByTime(slots, "13:00")
	assert.True(t, s.IsAvailable)
	s, _ = slotByTime(slots, "13:30")
	assert.False(t, s.HasGapIssue)
	s, _ = slotByTime(slots, "14:00")
	assert.True(t, s.IsReserved)
}

func TestEngine_ClosedDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		src  func() *fakeScheduleSource
	}{
		{
			name: "no schedule for weekday",
			date: "2025-10-19", // воскресенье
			src:  saturdaySchedule,
		},
		{
			name: "closed date",
			date: today,
			src: func() *fakeScheduleSource {
				s := saturdaySchedule()
				s.closedDates[today] = true
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservations := &fakeReservationSource{}
			engine := NewEngine(tt.src(), reservations, DefaultPolicy())

			slots, err := engine.ListAvailableSlots(context.Background(), 1, types.MustDate(tt.date), at(today, "08:00"))
			require.NoError(t, err)
			assert.Empty(t, slots)
			assert.Zero(t, reservations.calls)

			maxHours, err := engine.MaxDuration(context.Background(), 1, types.MustDate(tt.date), ts("12:00"))
			require.NoError(t, err)
			assert.Zero(t, maxHours)

			decision := engine.IsSlotBookable(context.Background(), 1, types.MustDate(tt.date), ts("12:00"), 1)
			assert.Equal(t, domain.AvailabilityUnavailable, decision.Availability)
		})
	}
}

func TestEngine_FailClosed(t *testing.T) {
	upstream := errors.New("connection refused")

	tests := []struct {
		name         string
		schedules    *fakeScheduleSource
		reservations *fakeReservationSource
	}{
		{
			name:         "closed dates unavailable",
			schedules:    &fakeScheduleSource{closedErr: upstream},
			reservations: &fakeReservationSource{},
		},
		{
			name:         "schedule unavailable",
			schedules:    &fakeScheduleSource{err: upstream},
			reservations: &fakeReservationSource{},
		},
		{
			name:         "reservations unavailable",
			schedules:    saturdaySchedule(),
			reservations: &fakeReservationSource{err: upstream},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(tt.schedules, tt.reservations, DefaultPolicy())
			date := types.MustDate(today)

			slots, err := engine.ListAvailableSlots(context.Background(), 1, date, at(today, "08:00"))
			assert.ErrorIs(t, err, ErrUpstreamUnavailable)
			assert.Nil(t, slots)

			_, err = engine.MaxDuration(context.Background(), 1, date, ts("12:00"))
			assert.ErrorIs(t, err, ErrUpstreamUnavailable)

			decision := engine.IsSlotBookable(context.Background(), 1, date, ts("12:00"), 1)
			assert.Equal(t, domain.AvailabilityUnknown, decision.Availability)
			assert.False(t, decision.Availability.IsBookable())
			assert.ErrorIs(t, decision.Err, ErrUpstreamUnavailable)
		})
	}
}

func TestEngine_MaxDurationAndBookable(t *testing.T) {
	reservations := &fakeReservationSource{
		reservations: []*domain.Reservation{reservation(1, "17:00", "19:00", domain.StatusApproved)},
	}
	engine := NewEngine(saturdaySchedule(), reservations, DefaultPolicy())
	date := types.MustDate(today)

	maxHours, err := engine.MaxDuration(context.Background(), 1, date, ts("14:00"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, maxHours)

	decision := engine.IsSlotBookable(context.Background(), 1, date, ts("14:00"), 3)
	assert.Equal(t, domain.AvailabilityAvailable, decision.Availability)

	decision = engine.IsSlotBookable(context.Background(), 1, date, ts("16:00"), 1.5)
	assert.Equal(t, domain.AvailabilityUnavailable, decision.Availability)
	assert.NoError(t, decision.Err)
}

func TestSnapshot_Without(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation(1, "14:00", "16:00", domain.StatusApproved),
		reservation(2, "18:00", "19:00", domain.StatusApproved),
	}
	snap := NewSnapshot(DefaultPolicy(), 1, types.MustDate(futureDate), window("09:00", "22:00"), true, reservations)

	moved := snap.Without(1)

	assert.Len(t, snap.Reservations, 2, "original snapshot is untouched")
	assert.Len(t, moved.Reservations, 1)
	assert.NoError(t, moved.CheckBooking(ts("14:30"), 60, at(today, "08:00")))
	assert.ErrorIs(t, snap.CheckBooking(ts("14:30"), 60, at(today, "08:00")), ErrSlotReserved)
}

func TestSnapshot_Closed(t *testing.T) {
	snap := NewSnapshot(DefaultPolicy(), 1, types.MustDate(today), Window{}, false, nil)

	assert.Empty(t, snap.Slots(at(today, "08:00")))
	assert.Zero(t, snap.MaxDuration(ts("12:00")))
	assert.False(t, snap.Bookable(ts("12:00"), 60))
	assert.ErrorIs(t, snap.CheckBooking(ts("12:00"), 60, at(today, "08:00")), ErrClosed)
}

func TestPolicy_Validate(t *testing.T) {
	assert.NoError(t, DefaultPolicy().Validate())

	below := DefaultPolicy()
	below.GapRule = GapRuleBelow
	assert.NoError(t, below.Validate())

	mutations := []func(p *Policy){
		func(p *Policy) { p.SlotStepMinutes = 0 },
		func(p *Policy) { p.RoundingMinutes = 0 },
		func(p *Policy) { p.TrailingWindowMinutes = -1 },
		func(p *Policy) { p.NextBookingBufferMinutes = -30 },
		func(p *Policy) { p.GapRule = "sometimes" },
		func(p *Policy) { p.GapGranularityMinutes = 0 },
		func(p *Policy) { p.GapRule = GapRuleBelow; p.MinIdleGapMinutes = 0 },
	}

	for i, mutate := range mutations {
		p := DefaultPolicy()
		mutate(&p)
		assert.ErrorIs(t, p.Validate(), ErrInvalidPolicy, "mutation %d", i)
	}
}
