package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы запроса слотов для SlotQueries
const (
	OutcomeOK          = "ok"
	OutcomeClosed      = "closed"
	OutcomeUnavailable = "upstream_unavailable"
	OutcomeInvalid     = "invalid_input"
)

// Metrics набор метрик сервиса.
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают.
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	slotQueries          *prometheus.CounterVec
	availabilityUnknown  *prometheus.CounterVec
	reservationConflicts *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(service string) *Metrics {
	return NewWithRegistry(service, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в переданном реестре (используется в тестах)
func NewWithRegistry(service string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		service: service,

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		dbQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		dbConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		slotQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "billiard_slot_queries_total",
			Help: "Slot list queries by outcome",
		}, []string{"service", "outcome"}),

		availabilityUnknown: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "billiard_availability_unknown_total",
			Help: "Availability decisions that failed closed because a data source was unavailable",
		}, []string{"service", "operation"}),

		reservationConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "billiard_reservation_conflicts_total",
			Help: "Reservation writes rejected by the final availability check",
		}, []string{"service", "operation"}),
	}
}

// RecordHTTPRequest записывает HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

// RecordDBQuery записывает длительность запроса к БД и ошибку, если она была
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.service, operation).Inc()
	}
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.service, "open").Set(float64(open))
	m.dbConnections.WithLabelValues(m.service, "in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues(m.service, "idle").Set(float64(idle))
}

// RecordSlotQuery считает запрос списка слотов с исходом
func (m *Metrics) RecordSlotQuery(outcome string) {
	if m == nil {
		return
	}
	m.slotQueries.WithLabelValues(m.service, outcome).Inc()
}

// RecordAvailabilityUnknown считает решение о доступности, закрытое из-за ошибки источника данных
func (m *Metrics) RecordAvailabilityUnknown(operation string) {
	if m == nil {
		return
	}
	m.availabilityUnknown.WithLabelValues(m.service, operation).Inc()
}

// RecordReservationConflict считает отказ при финальной проверке записи
func (m *Metrics) RecordReservationConflict(operation string) {
	if m == nil {
		return
	}
	m.reservationConflicts.WithLabelValues(m.service, operation).Inc()
}
