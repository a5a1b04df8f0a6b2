package reservation

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/pkg/ptr"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

func TestBuildActiveQuery(t *testing.T) {
	date := types.MustDate("2025-10-20")

	t.Run("without transaction", func(t *testing.T) {
		query, args, err := buildActiveQuery(7, date, false)
		require.NoError(t, err)

		assert.Contains(t, query, "FROM reservations")
		assert.Contains(t, query, "table_id = $1")
		assert.Contains(t, query, "reservation_date = $2")
		assert.Contains(t, query, "status NOT IN ($3,$4,$5)")
		assert.Contains(t, query, "ORDER BY start_time ASC")
		assert.NotContains(t, query, "FOR UPDATE")
		require.Len(t, args, 5)
		assert.Equal(t, int64(7), args[0])
		assert.Equal(t, []interface{}{"cancelled", "completed", "synced"}, args[2:])
	})

	t.Run("inside transaction locks rows", func(t *testing.T) {
		query, _, err := buildActiveQuery(7, date, true)
		require.NoError(t, err)
		assert.Contains(t, query, "ORDER BY start_time ASC FOR UPDATE")
	})
}

func TestBuildListQuery(t *testing.T) {
	date := types.MustDate("2025-10-20")

	t.Run("active only by default", func(t *testing.T) {
		query, _, err := buildListQuery(domain.ReservationsFilter{TableID: 1, Date: date})
		require.NoError(t, err)
		assert.Contains(t, query, "status NOT IN")
	})

	t.Run("include inactive", func(t *testing.T) {
		query, args, err := buildListQuery(domain.ReservationsFilter{TableID: 1, Date: date, IncludeInactive: true})
		require.NoError(t, err)
		assert.NotContains(t, query, "status NOT IN")
		assert.Len(t, args, 2)
	})

	t.Run("explicit status wins", func(t *testing.T) {
		status := domain.StatusCancelled
		query, args, err := buildListQuery(domain.ReservationsFilter{TableID: 1, Date: date, Status: &status})
		require.NoError(t, err)
		assert.Contains(t, query, "status = $3")
		assert.Equal(t, domain.StatusCancelled, args[2])
	})
}

func TestBuildInsertQuery(t *testing.T) {
	r := &domain.Reservation{
		TableID:       3,
		Date:          types.MustDate("2025-10-20"),
		StartTime:     types.MustTimeString("14:00"),
		EndTime:       types.MustTimeString("15:30"),
		DurationHours: 1.5,
		Status:        domain.StatusPending,
		CustomerName:  "Иван",
		CustomerPhone: ptr.Ptr("+79990001122"),
		CreatedBy:     ptr.Ptr(int64(42)),
	}

	query, args, err := buildInsertQuery(r)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO reservations")
	assert.Contains(t, query, "RETURNING id, created_at, updated_at")
	require.Len(t, args, 10)
	assert.Equal(t, int64(3), args[0])
	assert.Equal(t, 1.5, args[4])
	assert.Equal(t, domain.StatusPending, args[5])
}

func TestBuildRescheduleQuery(t *testing.T) {
	r := &domain.Reservation{
		ID:            9,
		Date:          types.MustDate("2025-10-21"),
		StartTime:     types.MustTimeString("10:00"),
		EndTime:       types.MustTimeString("11:00"),
		DurationHours: 1,
	}

	query, args, err := buildRescheduleQuery(r)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE reservations SET")
	assert.Contains(t, query, "updated_at = NOW()")
	assert.Contains(t, query, "WHERE id = $6")
	assert.Contains(t, query, "RETURNING updated_at")
	assert.Equal(t, domain.StatusRescheduled, args[4])
	assert.Equal(t, int64(9), args[5])
}

func TestBuildGetByIDQuery(t *testing.T) {
	query, args, err := buildGetByIDQuery(5, false)
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE id = $1")
	assert.NotContains(t, query, "FOR UPDATE")
	assert.Equal(t, []interface{}{int64(5)}, args)

	query, _, err = buildGetByIDQuery(5, true)
	require.NoError(t, err)
	assert.Contains(t, query, "FOR UPDATE")
}

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "exclusion violation", err: &pq.Error{Code: "23P01", Constraint: "reservations_no_overlap"}, want: ErrSlotNotAvailable},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, want: ErrTableNotFound},
		{name: "serialization failure", err: &pq.Error{Code: "40001"}, want: ErrConcurrentUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapWriteError(tt.err), tt.want)
		})
	}

	assert.Nil(t, mapWriteError(&pq.Error{Code: "23505"}))
	assert.Nil(t, mapWriteError(errors.New("connection reset")))
}
