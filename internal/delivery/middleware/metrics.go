package middleware

import (
	"log/slog"
	"time"

	"schoolnote/config"
	deliverycontext "schoolnote/internal/delivery/context"
	"schoolnote/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// slowRequestThreshold marks requests worth a warning in debug mode.
const slowRequestThreshold = 5 * time.Second

// MetricsMiddleware records every request in Prometheus and logs slow ones when debugging
type MetricsMiddleware struct {
	metrics *metrics.Metrics
	logger  *slog.Logger
	debug   bool
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics, logger *slog.Logger, cfg *config.Config) *MetricsMiddleware {
	return &MetricsMiddleware{
		metrics: m,
		logger:  logger,
		debug:   cfg.Env.Debug,
	}
}

// Handle observes the request after the error handler has written the final status.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		// Route pattern, not the raw path, keeps label cardinality bounded.
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		latency := time.Since(start)
		m.metrics.ObserveAPI(c.Request().Method, route, c.Response().Status, latency)

		if m.debug && latency >= slowRequestThreshold {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Slow request",
				slog.String("method", c.Request().Method),
				slog.String("route", route),
				slog.Int("status", c.Response().Status),
				slog.Duration("latency", latency),
			)
		}

		return nil
	}
}
