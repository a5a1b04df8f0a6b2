package cli

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/BilliardBookingService/internal/api/middleware"
	"github.com/m04kA/BilliardBookingService/pkg/metrics"
)

// routes обработчики HTTP API
type routes struct {
	// Доступность
	listTables        http.HandlerFunc
	listSlots         http.HandlerFunc
	getMaxDuration    http.HandlerFunc
	checkSlotBookable http.HandlerFunc

	// Брони
	createReservation       http.HandlerFunc
	getReservation          http.HandlerFunc
	rescheduleReservation   http.HandlerFunc
	updateReservationStatus http.HandlerFunc
	getTableReservations    http.HandlerFunc

	// Расписание площадки
	getSchedules     http.HandlerFunc
	getSchedule      http.HandlerFunc
	updateSchedule   http.HandlerFunc
	getClosedDates   http.HandlerFunc
	addClosedDate    http.HandlerFunc
	deleteClosedDate http.HandlerFunc
}

type routerOptions struct {
	metrics     *metrics.Metrics
	metricsPath string
	logger      middleware.Logger
}

// newRouter собирает mux.Router: публичные маршруты чтения и защищенные маршруты записи
func newRouter(h routes, opts routerOptions) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(opts.logger))

	if opts.metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.metrics))
		r.Handle(opts.metricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные эндпоинты
	api.HandleFunc("/tables", h.listTables).Methods(http.MethodGet)
	api.HandleFunc("/tables/{tableId:[0-9]+}/slots", h.listSlots).Methods(http.MethodGet)
	api.HandleFunc("/tables/{tableId:[0-9]+}/max-duration", h.getMaxDuration).Methods(http.MethodGet)
	api.HandleFunc("/tables/{tableId:[0-9]+}/bookable", h.checkSlotBookable).Methods(http.MethodGet)
	api.HandleFunc("/schedules", h.getSchedules).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{weekday}", h.getSchedule).Methods(http.MethodGet)
	api.HandleFunc("/closed-dates", h.getClosedDates).Methods(http.MethodGet)

	// Эндпоинты, требующие X-User-ID
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/reservations", h.createReservation).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", h.getReservation).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/reschedule", h.rescheduleReservation).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/status", h.updateReservationStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/tables/{tableId:[0-9]+}/reservations", h.getTableReservations).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{weekday}", h.updateSchedule).Methods(http.MethodPut)
	protected.HandleFunc("/closed-dates", h.addClosedDate).Methods(http.MethodPost)
	protected.HandleFunc("/closed-dates/{date}", h.deleteClosedDate).Methods(http.MethodDelete)

	return r
}
