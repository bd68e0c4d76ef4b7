package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors exported on the dedicated metrics port.
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vitatrack_http_requests_total",
		Help: "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vitatrack_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	PlanGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vitatrack_plan_generations_total",
		Help: "Plan generation jobs by plan type and outcome.",
	}, []string{"plan_type", "outcome"})

	ChatRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vitatrack_chat_requests_total",
		Help: "AI coach chat requests.",
	})

	PatternAlertsRaised = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vitatrack_pattern_alerts_total",
		Help: "Pattern alerts raised by type.",
	}, []string{"alert_type"})
)

// GinMiddleware records request counts and latency per route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		RequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
