package middleware

import (
	"strconv"
	"time"

	"github.com/deppfellow/go-eventbooking/internal/metrics"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency in Prometheus.
type MetricsMiddleware struct{}

func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Instrument labels by the route template (c.Path), never the raw URL, so
// /users/1 and /users/2 share a series. Unmatched routes are labelled
// "unmatched".
func (m *MetricsMiddleware) Instrument() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(statusFor(c, err))).Inc()

			return err
		}
	}
}

// statusFor is the status the response carries once the error handler has
// run.
func statusFor(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	return errorStatus(err)
}
