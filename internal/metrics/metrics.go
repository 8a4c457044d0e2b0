package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for contact submissions.
const (
	OutcomeSent        = "sent"
	OutcomeInvalid     = "invalid"
	OutcomeRejected    = "rejected"
	OutcomeFailed      = "failed"
	OutcomeRateLimited = "rate_limited"
)

// Metrics groups the collectors exported by the site.
type Metrics struct {
	registry *prometheus.Registry

	ContactSubmissions *prometheus.CounterVec
	ContactLatency     prometheus.Histogram
	HTTPRequests       *prometheus.CounterVec
}

// New registers the site collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ContactSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aspire_site",
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		ContactLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "aspire_site",
			Name:      "contact_api_duration_seconds",
			Help:      "Time spent waiting for the Contact API.",
			Buckets:   prometheus.DefBuckets,
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aspire_site",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
	}
	reg.MustRegister(
		m.ContactSubmissions,
		m.ContactLatency,
		m.HTTPRequests,
		prometheus.NewGoCollector(),
	)
	return m
}

// ObserveContact records the outcome and Contact API latency of one submission.
func (m *Metrics) ObserveContact(outcome string, elapsed time.Duration) {
	m.ContactSubmissions.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		m.ContactLatency.Observe(elapsed.Seconds())
	}
}

// Middleware counts requests by matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
