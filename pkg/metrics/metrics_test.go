package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("billiard", reg)

	m.RecordHTTPRequest("GET", "/api/v1/tables", 200, 10*time.Millisecond)
	m.RecordDBQuery("query", time.Millisecond, nil)
	m.RecordDBQuery("query", time.Millisecond, errors.New("boom"))
	m.RecordSlotQuery(OutcomeOK)
	m.RecordSlotQuery(OutcomeOK)
	m.RecordAvailabilityUnknown("is_slot_bookable")
	m.RecordReservationConflict("create_reservation")
	m.SetDBConnections(5, 2, 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("billiard", "GET", "/api/v1/tables", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("billiard", "query")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.slotQueries.WithLabelValues("billiard", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityUnknown.WithLabelValues("billiard", "is_slot_bookable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservationConflicts.WithLabelValues("billiard", "create_reservation")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("billiard", "in_use")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/", 200, time.Second)
		m.RecordDBQuery("exec", time.Second, nil)
		m.SetDBConnections(1, 1, 0)
		m.RecordSlotQuery(OutcomeClosed)
		m.RecordAvailabilityUnknown("max_duration")
		m.RecordReservationConflict("reschedule_reservation")
	})
}
