package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса.
// Все методы Inc*/Observe*/Set* безопасно вызывать на nil (метрики выключены).
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge

	QuotesComputed   *prometheus.CounterVec
	QuoteTotalAmount prometheus.Histogram
	BookingsCreated  *prometheus.CounterVec
	BookingsRejected *prometheus.CounterVec
	CatalogCacheHits *prometheus.CounterVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HTTPRequestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: labels,
		}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: labels,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: labels,
		}),

		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: labels,
		}),

		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: labels,
		}),

		QuotesComputed: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "quotes_computed_total",
			Help:        "Total number of computed quotes",
			ConstLabels: labels,
		}, []string{"rush"}),

		QuoteTotalAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "quote_total_amount",
			Help:        "Quote totals including tax, in shop currency",
			ConstLabels: labels,
			Buckets:     []float64{1000, 5000, 10000, 20000, 50000, 100000, 250000},
		}),

		BookingsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of accepted bookings",
			ConstLabels: labels,
		}, []string{"location"}),

		BookingsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Total number of rejected booking requests",
			ConstLabels: labels,
		}, []string{"reason"}),

		CatalogCacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_cache_requests_total",
			Help:        "Catalog cache lookups by result",
			ConstLabels: labels,
		}, []string{"result"}),
	}
}

func (m *Metrics) IncQuoteComputed(rush bool, total float64) {
	if m == nil {
		return
	}
	label := "false"
	if rush {
		label = "true"
	}
	m.QuotesComputed.WithLabelValues(label).Inc()
	m.QuoteTotalAmount.Observe(total)
}

func (m *Metrics) IncBookingCreated(locationID string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(locationID).Inc()
}

func (m *Metrics) IncBookingRejected(reason string) {
	if m == nil {
		return
	}
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

// IncCatalogCache result: hit, miss, error
func (m *Metrics) IncCatalogCache(result string) {
	if m == nil {
		return
	}
	m.CatalogCacheHits.WithLabelValues(result).Inc()
}
