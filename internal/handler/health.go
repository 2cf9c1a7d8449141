package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/go-eventbooking/internal/middleware"
	"github.com/deppfellow/go-eventbooking/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type healthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time,omitempty"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Store       string                 `json:"store"`
	Checks      map[string]healthCheck `json:"checks"`
}

// CheckHealth answers 200 when every required dependency responds and 503
// otherwise.
//
// The database is required when entities live in PostgreSQL. Redis only
// carries booking confirmations, so a failed Redis check is reported but
// leaves the service healthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Store:       h.server.Config.Store.Driver,
		Checks:      make(map[string]healthCheck),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.HealthChecks.Timeout)
	defer cancel()

	if h.server.DB != nil && cfg.HealthCheckEnabled("database") {
		check := h.runCheck(ctx, &logger, "database", h.server.DB.Pool.Ping)
		response.Checks["database"] = check
		if check.Status != statusHealthy {
			response.Status = statusUnhealthy
		}
	}

	if h.server.Redis != nil && cfg.HealthCheckEnabled("redis") {
		response.Checks["redis"] = h.runCheck(ctx, &logger, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if response.Status != statusHealthy {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthCheckError("overall", map[string]interface{}{
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) runCheck(ctx context.Context, logger *zerolog.Logger, name string, ping func(context.Context) error) healthCheck {
	checkStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", name)

		h.recordHealthCheckError(name, map[string]interface{}{
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return healthCheck{
			Status:       statusUnhealthy,
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}
	}

	logger.Debug().
		Dur("response_time", elapsed).
		Msgf("%s health check passed", name)

	return healthCheck{Status: statusHealthy, ResponseTime: elapsed.String()}
}

// recordHealthCheckError sends a HealthCheckError custom event when New
// Relic is enabled.
func (h *HealthHandler) recordHealthCheckError(checkType string, attrs map[string]interface{}) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	attrs["check_type"] = checkType
	attrs["operation"] = "health_check"
	attrs["error_type"] = checkType + "_unhealthy"
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
}
