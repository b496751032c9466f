package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"inventory-analytics-service/prometheus"
)

// MetricsMiddleware records request count and latency per route. The
// route template from c.Path() keeps the label cardinality bounded
// even when IDs vary per request.
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		duration := time.Since(start).Seconds()

		method := c.Request().Method
		path := c.Path()
		status := strconv.Itoa(c.Response().Status)

		prometheus.HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(method, path, status).Observe(duration)
		return err
	}
}
