package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Бизнес-события, которые считают сервисы
const (
	EventUserSignedUp     = "user_signed_up"
	EventUserSignedIn     = "user_signed_in"
	EventSignInFailed     = "sign_in_failed"
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
	EventBookingStatus    = "booking_status_updated"
	EventFeedbackSent     = "feedback_submitted"
	EventShopRegistered   = "shop_registered"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	BusinessEvents *prometheus.CounterVec

	serviceName string
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре (используется в тестах)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"service", "method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "route"},
		),

		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency by statement kind.",
				Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "operation"},
		),
		DBQueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_query_errors_total",
				Help: "Database queries that returned an error.",
			},
			[]string{"service", "operation"},
		),
		DBOpenConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_open_connections",
				Help: "Established connections, both in use and idle.",
			},
			[]string{"service"},
		),
		DBInUseConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_in_use_connections",
				Help: "Connections currently in use.",
			},
			[]string{"service"},
		),
		DBIdleConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_idle_connections",
				Help: "Idle connections.",
			},
			[]string{"service"},
		),
		DBWaitCount: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_wait_count",
				Help: "Total number of connections waited for.",
			},
			[]string{"service"},
		),

		BusinessEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carwash_events_total",
				Help: "Business events (signups, bookings, feedback, shops).",
			},
			[]string{"service", "event"},
		),
	}
}

// ServiceName имя сервиса, которым помечаются метрики
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// Inc увеличивает счетчик бизнес-события
func (m *Metrics) Inc(event string) {
	m.BusinessEvents.WithLabelValues(m.serviceName, event).Inc()
}

// Nop реализация счетчика событий для выключенных метрик
type Nop struct{}

// Inc ничего не делает
func (Nop) Inc(string) {}
