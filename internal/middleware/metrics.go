package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestMetrics holds Prometheus metrics for HTTP request handling.
type RequestMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var (
	requestMetrics     *RequestMetrics
	requestMetricsOnce sync.Once
)

// GetRequestMetrics returns the singleton request metrics instance.
func GetRequestMetrics() *RequestMetrics {
	requestMetricsOnce.Do(func() {
		requestMetrics = newRequestMetrics()
	})
	return requestMetrics
}

func newRequestMetrics() *RequestMetrics {
	return &RequestMetrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "routemap",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "routemap",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by method and route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Metrics returns a middleware that records request counts and
// latencies. The route label uses gin's route pattern rather than the
// raw path to keep label cardinality bounded.
func Metrics() gin.HandlerFunc {
	m := GetRequestMetrics()

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unknownRoute
		}
		method := c.Request.Method
		statusCode := strconv.Itoa(c.Writer.Status())

		m.requestsTotal.WithLabelValues(method, route, statusCode).Inc()
		m.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
