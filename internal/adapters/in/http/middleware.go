package http

import (
	"strconv"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Observe logs each request and records it in the HTTP metrics. Errors are
// handed to the echo error handler here so the final status is known.
func Observe(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			req := c.Request()
			status := c.Response().Status
			route := c.Path()

			metrics.HTTPRequestsTotal.WithLabelValues(route, req.Method, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(route, req.Method).Observe(latency.Seconds())

			logger.Info("HTTP request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", status),
				zap.Duration("latency", latency),
				zap.String("remote_ip", c.RealIP()))
			return nil
		}
	}
}
