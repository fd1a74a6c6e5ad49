// Package metrics exposes Prometheus collectors for HTTP traffic and the
// business transitions that matter operationally.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	QuotaDenials       *prometheus.CounterVec
	PaymentTransitions *prometheus.CounterVec
}

// New creates a Metrics instance on its own registry, so several instances
// (one per test) never collide.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talento_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "talento_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		QuotaDenials: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talento_quota_denials_total",
				Help: "Interview creations refused by the quota gate",
			},
			[]string{"reason"}, // NoActivePlan, QuotaExceeded
		),
		PaymentTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talento_payment_transitions_total",
				Help: "Payments leaving the pending state",
			},
			[]string{"method", "status"}, // gateway|manual, completed|failed
		),
	}
}

// QuotaDenied implements the quota gate's denial recorder.
func (m *Metrics) QuotaDenied(reason string) {
	m.QuotaDenials.WithLabelValues(reason).Inc()
}

// PaymentTransitioned implements the payment workflow's transition recorder.
func (m *Metrics) PaymentTransitioned(method, status string) {
	m.PaymentTransitions.WithLabelValues(method, status).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and latency per route pattern.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Use the route pattern, not the raw path, to bound label cardinality.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
