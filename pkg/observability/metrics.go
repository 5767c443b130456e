package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Catalog metrics
	CatalogLookupsTotal *prometheus.CounterVec

	// Review metrics
	ReviewWritesTotal *prometheus.CounterVec

	// Identity metrics
	AuthFailuresTotal *prometheus.CounterVec
	LoginsTotal       prometheus.Counter

	// Gauges over the in-memory stores
	BooksTotal      prometheus.Gauge
	UsersRegistered prometheus.Gauge
	ReviewsTotal    prometheus.Gauge
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstand_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookstand_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		CatalogLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstand_catalog_lookups_total",
				Help: "Total number of catalog lookups",
			},
			[]string{"kind", "outcome"},
		),

		ReviewWritesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstand_review_writes_total",
				Help: "Total number of review mutations",
			},
			[]string{"operation", "outcome"},
		),

		AuthFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstand_auth_failures_total",
				Help: "Total number of failed registrations and logins",
			},
			[]string{"reason"},
		),
		LoginsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "bookstand_logins_total",
				Help: "Total number of successful logins",
			},
		),

		BooksTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "bookstand_books_total",
				Help: "Number of books in the catalog",
			},
		),
		UsersRegistered: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "bookstand_users_registered",
				Help: "Number of registered users",
			},
		),
		ReviewsTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "bookstand_reviews_total",
				Help: "Number of reviews across all books",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CatalogLookupsTotal,
		m.ReviewWritesTotal,
		m.AuthFailuresTotal,
		m.LoginsTotal,
		m.BooksTotal,
		m.UsersRegistered,
		m.ReviewsTotal,
	)

	return m
}

// metricsResponseWriter wraps http.ResponseWriter to capture the status code
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *metricsResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// HTTPMetricsMiddleware instruments HTTP requests with Prometheus metrics
func HTTPMetricsMiddleware(metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &metricsResponseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(rw.statusCode)

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
		})
	}
}

// RegisterMetricsEndpoint registers the /metrics endpoint
func RegisterMetricsEndpoint(mux *http.ServeMux, registry *prometheus.Registry) {
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
