package get_max_duration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	tableRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/table"
	"github.com/m04kA/BilliardBookingService/internal/scheduling"
	"github.com/m04kA/BilliardBookingService/pkg/logger"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

type fakeSchedules struct {
	err error
}

func (f fakeSchedules) GetSchedule(_ context.Context, weekday time.Weekday) (*domain.OperatingSchedule, error) {
	return &domain.OperatingSchedule{
		Weekday:   weekday,
		OpenTime:  types.MustTimeString("09:00"),
		CloseTime: types.MustTimeString("22:00"),
		IsActive:  true,
	}, f.err
}

func (f fakeSchedules) IsDateClosed(_ context.Context, _ types.Date) (bool, error) {
	return false, f.err
}

type fakeReservations struct {
	items []*domain.Reservation
}

func (f fakeReservations) GetActiveReservations(_ context.Context, _ int64, _ types.Date) ([]*domain.Reservation, error) {
	return f.items, nil
}

type fakeTables struct{}

func (fakeTables) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	if id != 1 {
		return nil, tableRepo.ErrTableNotFound
	}
	return &domain.Table{ID: 1, IsActive: true}, nil
}

type fakeCatalog struct {
	options []domain.DurationOption
	err     error
}

func (f fakeCatalog) ListActive(_ context.Context) ([]domain.DurationOption, error) {
	return f.options, f.err
}

type nopMetrics struct{ unknown int }

func (m *nopMetrics) RecordAvailabilityUnknown(string) { m.unknown++ }

func catalogOf(hours ...float64) []domain.DurationOption {
	options := make([]domain.DurationOption, 0, len(hours))
	for i, h := range hours {
		options = append(options, domain.DurationOption{ID: int64(i + 1), Hours: h, Active: true})
	}
	return options
}

func hoursOf(options []domain.DurationOption) []float64 {
	result := make([]float64, 0, len(options))
	for _, o := range options {
		result = append(result, o.Hours)
	}
	return result
}

func reservationAt(start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:        1,
		TableID:   1,
		Date:      types.MustDate("2025-10-20"),
		StartTime: types.MustTimeString(start),
		EndTime:   types.MustTimeString(end),
		Status:    domain.StatusPending,
	}
}

func newTestUseCase(schedules fakeSchedules, reservations fakeReservations, catalog fakeCatalog, m *nopMetrics) *UseCase {
	engine := scheduling.NewEngine(schedules, reservations, scheduling.DefaultPolicy())
	return NewUseCase(engine, fakeTables{}, catalog, []float64{1, 2, 3}, m, logger.NewNop())
}

func TestUseCase_Execute(t *testing.T) {
	catalog := fakeCatalog{options: catalogOf(4, 0.5, 1, 1.5, 2, 3)}

	tests := []struct {
		name         string
		reservations []*domain.Reservation
		start        string
		wantMax      float64
		wantHours    []float64
	}{
		{name: "until close", start: "14:00", wantMax: 8, wantHours: []float64{0.5, 1, 1.5, 2, 3, 4}},
		{name: "buffer before next booking", reservations: []*domain.Reservation{reservationAt("17:00", "18:00")}, start: "14:00", wantMax: 2, wantHours: []float64{0.5, 1, 1.5, 2}},
		{name: "rounded down to half hour", reservations: []*domain.Reservation{reservationAt("17:15", "18:00")}, start: "14:00", wantMax: 2, wantHours: []float64{0.5, 1, 1.5, 2}},
		{name: "too close to next booking", reservations: []*domain.Reservation{reservationAt("15:00", "16:00")}, start: "14:30", wantMax: 0, wantHours: []float64{}},
		{name: "inside reservation", reservations: []*domain.Reservation{reservationAt("14:00", "16:00")}, start: "15:00", wantMax: 0, wantHours: []float64{}},
		{name: "short before close", start: "21:30", wantMax: 0.5, wantHours: []float64{0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(fakeSchedules{}, fakeReservations{items: tt.reservations}, catalog, &nopMetrics{})

			resp, err := uc.Execute(context.Background(), &Request{TableID: 1, Date: "2025-10-20", StartTime: tt.start})
			require.NoError(t, err)
			assert.Equal(t, tt.wantMax, resp.MaxHours)
			assert.Equal(t, tt.wantHours, hoursOf(resp.Durations))
		})
	}
}

func TestUseCase_Execute_CatalogFallback(t *testing.T) {
	tests := []struct {
		name    string
		catalog fakeCatalog
	}{
		{name: "empty catalog", catalog: fakeCatalog{}},
		{name: "catalog unavailable", catalog: fakeCatalog{err: errors.New("relation does not exist")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(fakeSchedules{}, fakeReservations{}, tt.catalog, &nopMetrics{})

			resp, err := uc.Execute(context.Background(), &Request{TableID: 1, Date: "2025-10-20", StartTime: "20:00"})
			require.NoError(t, err)
			assert.Equal(t, 2.0, resp.MaxHours)
			assert.Equal(t, []float64{1, 2}, hoursOf(resp.Durations))
		})
	}
}

func TestUseCase_Execute_Errors(t *testing.T) {
	m := &nopMetrics{}
	uc := newTestUseCase(fakeSchedules{err: errors.New("timeout")}, fakeReservations{}, fakeCatalog{}, m)

	_, err := uc.Execute(context.Background(), &Request{TableID: 1, Date: "2025-10-20", StartTime: "14:00"})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, 1, m.unknown)

	_, err = uc.Execute(context.Background(), &Request{TableID: 1, Date: "2025-10-20", StartTime: "2:00 PM"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TableID: 3, Date: "2025-10-20", StartTime: "14:00"})
	assert.ErrorIs(t, err, ErrTableNotFound)
}
