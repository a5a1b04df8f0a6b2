package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BilliardBookingService/pkg/logger"
	"github.com/m04kA/BilliardBookingService/pkg/metrics"
)

// stubRoutes возвращает обработчики, которые пишут свое имя в заголовок ответа
func stubRoutes() routes {
	stub := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Handler", name)
			w.WriteHeader(http.StatusOK)
		}
	}

	return routes{
		listTables:              stub("listTables"),
		listSlots:               stub("listSlots"),
		getMaxDuration:          stub("getMaxDuration"),
		checkSlotBookable:       stub("checkSlotBookable"),
		createReservation:       stub("createReservation"),
		getReservation:          stub("getReservation"),
		rescheduleReservation:   stub("rescheduleReservation"),
		updateReservationStatus: stub("updateReservationStatus"),
		getTableReservations:    stub("getTableReservations"),
		getSchedules:            stub("getSchedules"),
		getSchedule:             stub("getSchedule"),
		updateSchedule:          stub("updateSchedule"),
		getClosedDates:          stub("getClosedDates"),
		addClosedDate:           stub("addClosedDate"),
		deleteClosedDate:        stub("deleteClosedDate"),
	}
}

func TestNewRouter_Routes(t *testing.T) {
	router := newRouter(stubRoutes(), routerOptions{logger: logger.NewNop()})

	tests := []struct {
		name        string
		method      string
		path        string
		userID      string
		wantStatus  int
		wantHandler string
	}{
		{name: "tables", method: http.MethodGet, path: "/api/v1/tables", wantStatus: http.StatusOK, wantHandler: "listTables"},
		{name: "slots", method: http.MethodGet, path: "/api/v1/tables/3/slots?date=2025-10-20", wantStatus: http.StatusOK, wantHandler: "listSlots"},
		{name: "max duration", method: http.MethodGet, path: "/api/v1/tables/3/max-duration", wantStatus: http.StatusOK, wantHandler: "getMaxDuration"},
		{name: "bookable", method: http.MethodGet, path: "/api/v1/tables/3/bookable", wantStatus: http.StatusOK, wantHandler: "checkSlotBookable"},
		{name: "schedule read is public", method: http.MethodGet, path: "/api/v1/schedules/monday", wantStatus: http.StatusOK, wantHandler: "getSchedule"},
		{name: "closed dates read is public", method: http.MethodGet, path: "/api/v1/closed-dates", wantStatus: http.StatusOK, wantHandler: "getClosedDates"},

		{name: "create reservation", method: http.MethodPost, path: "/api/v1/reservations", userID: "7", wantStatus: http.StatusOK, wantHandler: "createReservation"},
		{name: "reschedule", method: http.MethodPatch, path: "/api/v1/reservations/5/reschedule", userID: "7", wantStatus: http.StatusOK, wantHandler: "rescheduleReservation"},
		{name: "status", method: http.MethodPatch, path: "/api/v1/reservations/5/status", userID: "7", wantStatus: http.StatusOK, wantHandler: "updateReservationStatus"},
		{name: "table reservations", method: http.MethodGet, path: "/api/v1/tables/3/reservations", userID: "7", wantStatus: http.StatusOK, wantHandler: "getTableReservations"},
		{name: "schedule update", method: http.MethodPut, path: "/api/v1/schedules/monday", userID: "7", wantStatus: http.StatusOK, wantHandler: "updateSchedule"},
		{name: "delete closed date", method: http.MethodDelete, path: "/api/v1/closed-dates/2025-12-31", userID: "7", wantStatus: http.StatusOK, wantHandler: "deleteClosedDate"},

		{name: "create without user", method: http.MethodPost, path: "/api/v1/reservations", wantStatus: http.StatusUnauthorized},
		{name: "schedule update without user", method: http.MethodPut, path: "/api/v1/schedules/monday", wantStatus: http.StatusUnauthorized},
		{name: "non numeric table id", method: http.MethodGet, path: "/api/v1/tables/abc/slots", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHandler, rec.Header().Get("X-Handler"))
		})
	}
}

func TestNewRouter_RequestID(t *testing.T) {
	router := newRouter(stubRoutes(), routerOptions{logger: logger.NewNop()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tables", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestNewRouter_Metrics(t *testing.T) {
	m := metrics.NewWithRegistry("billiard-booking-test", prometheus.NewRegistry())
	router := newRouter(stubRoutes(), routerOptions{
		metrics:     m,
		metricsPath: "/metrics",
		logger:      logger.NewNop(),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Без метрик эндпоинт не регистрируется
	plain := newRouter(stubRoutes(), routerOptions{logger: logger.NewNop()})
	rec = httptest.NewRecorder()
	plain.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
