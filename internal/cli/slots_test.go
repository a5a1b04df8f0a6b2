package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	"github.com/m04kA/BilliardBookingService/internal/scheduling"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

func TestRenderSlots(t *testing.T) {
	date := types.MustDate("2025-10-20")
	window := scheduling.Window{Open: types.MustTimeString("18:00"), Close: types.MustTimeString("22:00")}
	reservations := []*domain.Reservation{{
		ID:        1,
		TableID:   2,
		Date:      date,
		StartTime: types.MustTimeString("19:00"),
		EndTime:   types.MustTimeString("20:00"),
		Status:    domain.StatusApproved,
	}}
	snap := scheduling.NewSnapshot(scheduling.DefaultPolicy(), 2, date, window, true, reservations)

	var out bytes.Buffer
	require.NoError(t, renderSlots(&out, snap, time.Date(2025, 10, 19, 12, 0, 0, 0, time.UTC)))

	text := out.String()
	assert.Contains(t, text, "table 2, 2025-10-20 (Monday), open 18:00-22:00")
	assert.Regexp(t, `19:30\s+7:30 PM\s+reserved\s+-`, text)
	assert.Regexp(t, `20:30\s+8:30 PM\s+gap\s+-`, text)
	assert.Regexp(t, `21:00\s+9:00 PM\s+free\s+1\.0`, text)
	assert.Regexp(t, `21:30\s+9:30 PM\s+free\s+0\.5`, text)
	assert.NotContains(t, text, "10:00 PM")
}

func TestRenderSlots_Closed(t *testing.T) {
	snap := scheduling.NewSnapshot(scheduling.DefaultPolicy(), 4, types.MustDate("2025-10-19"), scheduling.Window{}, false, nil)

	var out bytes.Buffer
	require.NoError(t, renderSlots(&out, snap, time.Now()))
	assert.Equal(t, "table 4 is closed on 2025-10-19\n", out.String())
}
