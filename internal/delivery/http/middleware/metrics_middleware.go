package middleware

import (
	"time"

	"carmarket/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency by route template.
type MetricsMiddleware struct {
	metrics service.MarketMetrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(metrics service.MarketMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Handle renders handler errors before recording so the observed status is final.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.metrics.RecordHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return err
	}
}
