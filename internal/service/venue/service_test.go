package venue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	scheduleRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/BilliardBookingService/internal/service/venue/models"
	"github.com/m04kA/BilliardBookingService/pkg/logger"
	"github.com/m04kA/BilliardBookingService/pkg/ptr"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

type fakeScheduleRepo struct {
	schedules map[time.Weekday]*domain.OperatingSchedule
	closed    map[string]*domain.ClosedDate
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		schedules: map[time.Weekday]*domain.OperatingSchedule{},
		closed:    map[string]*domain.ClosedDate{},
	}
}

func (f *fakeScheduleRepo) GetAll(_ context.Context) ([]*domain.OperatingSchedule, error) {
	result := make([]*domain.OperatingSchedule, 0)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s, ok := f.schedules[d]; ok {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeScheduleRepo) GetByWeekday(_ context.Context, weekday time.Weekday) (*domain.OperatingSchedule, error) {
	s, ok := f.schedules[weekday]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return s, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, s *domain.OperatingSchedule) (*domain.OperatingSchedule, error) {
	f.schedules[s.Weekday] = s
	return s, nil
}

func (f *fakeScheduleRepo) ListClosedDates(_ context.Context, from, to types.Date) ([]*domain.ClosedDate, error) {
	result := make([]*domain.ClosedDate, 0)
	for _, c := range f.closed {
		if !from.IsZero() && c.Date.Before(from) {
			continue
		}
		if !to.IsZero() && c.Date.After(to) {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeScheduleRepo) AddClosedDate(_ context.Context, c *domain.ClosedDate) (*domain.ClosedDate, error) {
	if _, ok := f.closed[c.Date.String()]; ok {
		return nil, scheduleRepo.ErrClosedDateExists
	}
	f.closed[c.Date.String()] = c
	return c, nil
}

func (f *fakeScheduleRepo) DeleteClosedDate(_ context.Context, date types.Date) error {
	if _, ok := f.closed[date.String()]; !ok {
		return scheduleRepo.ErrClosedDateNotFound
	}
	delete(f.closed, date.String())
	return nil
}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f fakeTableRepo) List(_ context.Context, onlyActive bool) ([]*domain.Table, error) {
	result := make([]*domain.Table, 0)
	for _, t := range f.tables {
		if onlyActive && !t.IsActive {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

func newTestService(repo *fakeScheduleRepo) *Service {
	tables := fakeTableRepo{tables: []*domain.Table{
		{ID: 1, Name: "Стол 1", Kind: "pool", IsActive: true},
		{ID: 2, Name: "Снукер", Kind: "snooker", IsActive: false},
	}}
	return NewService(repo, tables, logger.NewNop())
}

func TestService_UpdateSchedule(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestService(repo)

	resp, err := svc.UpdateSchedule(context.Background(), "saturday", &models.UpdateScheduleRequest{
		OpenTime:  "10:00",
		CloseTime: "24:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Saturday", resp.Weekday)
	assert.Equal(t, "24:00:00", resp.CloseTime)
	assert.True(t, resp.IsOpen)
	assert.Contains(t, repo.schedules, time.Saturday)

	resp, err = svc.UpdateSchedule(context.Background(), "Sunday", &models.UpdateScheduleRequest{
		OpenTime:         "12:00",
		CloseTime:        "20:00",
		IsClosedOverride: ptr.Ptr(true),
	})
	require.NoError(t, err)
	assert.False(t, resp.IsOpen)
}

func TestService_UpdateSchedule_Validation(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo())

	tests := []struct {
		name    string
		weekday string
		req     models.UpdateScheduleRequest
	}{
		{name: "unknown weekday", weekday: "Funday", req: models.UpdateScheduleRequest{OpenTime: "10:00", CloseTime: "20:00"}},
		{name: "12h format", weekday: "Monday", req: models.UpdateScheduleRequest{OpenTime: "10:00 AM", CloseTime: "20:00"}},
		{name: "open after close", weekday: "Monday", req: models.UpdateScheduleRequest{OpenTime: "20:00", CloseTime: "10:00"}},
		{name: "empty window", weekday: "Monday", req: models.UpdateScheduleRequest{OpenTime: "10:00", CloseTime: "10:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateSchedule(context.Background(), tt.weekday, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_GetSchedule(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.schedules[time.Monday] = &domain.OperatingSchedule{
		Weekday:   time.Monday,
		OpenTime:  types.MustTimeString("09:00"),
		CloseTime: types.MustTimeString("22:00"),
		IsActive:  true,
	}
	svc := newTestService(repo)

	resp, err := svc.GetSchedule(context.Background(), "Monday")
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", resp.OpenTime)

	_, err = svc.GetSchedule(context.Background(), "Tuesday")
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	list, err := svc.GetSchedules(context.Background())
	require.NoError(t, err)
	assert.Len(t, list.Schedules, 1)
}

func TestService_ClosedDates(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	added, err := svc.AddClosedDate(ctx, &models.AddClosedDateRequest{Date: "2025-12-31", Reason: ptr.Ptr("  Новый год ")})
	require.NoError(t, err)
	assert.Equal(t, "Новый год", *added.Reason)

	_, err = svc.AddClosedDate(ctx, &models.AddClosedDateRequest{Date: "2025-12-31"})
	assert.ErrorIs(t, err, ErrClosedDateExists)

	_, err = svc.AddClosedDate(ctx, &models.AddClosedDateRequest{Date: "31.12.2025"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	list, err := svc.ListClosedDates(ctx, &models.ListClosedDatesRequest{From: "2025-12-01", To: "2025-12-31"})
	require.NoError(t, err)
	assert.Len(t, list.ClosedDates, 1)

	_, err = svc.ListClosedDates(ctx, &models.ListClosedDatesRequest{From: "2025-12-31", To: "2025-12-01"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.DeleteClosedDate(ctx, "2025-12-31"))
	assert.ErrorIs(t, svc.DeleteClosedDate(ctx, "2025-12-31"), ErrClosedDateNotFound)
}

func TestService_ListTables(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo())

	all, err := svc.ListTables(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all.Tables, 2)

	active, err := svc.ListTables(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active.Tables, 1)
	assert.Equal(t, "pool", active.Tables[0].Kind)
}
