package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics collects per-request counters and latencies on a private
// registry. Path labels stay bounded because no route carries parameters.
type HTTPMetrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics() *HTTPMetrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insights_http_requests_total",
		Help: "Total HTTP requests handled, by method, path and status.",
	}, []string{"method", "path", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "insights_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds, by method and path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	registry.MustRegister(requests, duration)

	return &HTTPMetrics{
		registry: registry,
		requests: requests,
		duration: duration,
	}
}

// Middleware records every handled request.
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		method := c.Method()
		path := c.Path()
		m.requests.WithLabelValues(method, path, strconv.Itoa(c.Response().StatusCode())).Inc()
		m.duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler godoc
// @Summary Prometheus metrics
// @Description Exposes the private registry in the Prometheus text format
// @Tags Observability
// @Produce plain
// @Success 200 {string} string
// @Router /metrics [get]
func (m *HTTPMetrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
