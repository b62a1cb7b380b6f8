package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/config"
	"github.com/deppfellow/blogs-server/internal/middleware"
	"github.com/deppfellow/blogs-server/internal/server"
)

const (
	checkDatabase = "database"
	checkRedis    = "redis"
)

// dependencyCheck probes one dependency. A failing required check makes the
// service unhealthy; a failing optional one only degrades it.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checks []dependencyCheck
}

// NewHealthHandler registers the checks enabled in observability.health_checks.
// Redis is only probed when it is configured.
func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}

	hc := s.Config.Observability.HealthChecks
	if !hc.Enabled {
		return h
	}

	if hc.Has(checkDatabase) && s.DB != nil {
		h.checks = append(h.checks, dependencyCheck{name: checkDatabase, required: true, ping: s.DB.Ping})
	}
	if hc.Has(checkRedis) && s.Redis != nil {
		h.checks = append(h.checks, dependencyCheck{name: checkRedis, ping: func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}})
	}

	return h
}

// CheckHealth returns 200 when every required dependency answers, 503 otherwise.
// A failing optional dependency reports "degraded" with a 200.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	results := make(map[string]interface{}, len(h.checks))
	status := "healthy"

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout())
		checkStart := time.Now()
		err := check.ping(ctx)
		cancel()
		elapsed := time.Since(checkStart)

		if err == nil {
			results[check.name] = map[string]interface{}{
				"status":        "healthy",
				"response_time": elapsed.String(),
			}
			logger.Debug().Str("check", check.name).Dur("response_time", elapsed).Msg("health check passed")
			continue
		}

		results[check.name] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}
		if check.required {
			status = "unhealthy"
		} else if status == "healthy" {
			status = "degraded"
		}

		logger.Error().Err(err).Str("check", check.name).Dur("response_time", elapsed).Msg("health check failed")

		h.server.LoggerService.RecordEvent("HealthCheckError", map[string]interface{}{
			"check_type":       check.name,
			"operation":        "health_check",
			"error_type":       check.name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	}

	response := map[string]interface{}{
		"status":      status,
		"service":     config.ServiceName,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      results,
	}

	code := http.StatusOK
	if status == "unhealthy" {
		code = http.StatusServiceUnavailable
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
	}

	return c.JSON(code, response)
}

func (h *HealthHandler) timeout() time.Duration {
	if t := h.server.Config.Observability.HealthChecks.Timeout; t > 0 {
		return t
	}
	return 5 * time.Second
}
