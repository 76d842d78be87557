package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hamstech/backend/internal/db"
)

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Health godoc
// @Summary Health check
// @Description Check the health status of the API and its dependencies
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Health status"
// @Router /health [get]
func (s *Server) Health(c echo.Context) error {
	status := map[string]any{
		"success": true,
		"status":  "ok",
	}
	checks := map[string]any{}
	status["checks"] = checks

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := db.Ping(ctx, s.DB); err != nil {
		s.Log.Error("health check failed", "check", "database", "error", err)
		checks["database"] = map[string]any{"ok": false}
		status["status"] = "degraded"
	} else {
		checks["database"] = map[string]any{"ok": true}
	}

	// Telemetry (best-effort)
	if hc, ok := s.Mirror.(healthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			s.Log.Warn("health check failed", "check", "influxdb", "error", err)
			checks["influxdb"] = map[string]any{"ok": false}
			status["status"] = "degraded"
		} else {
			checks["influxdb"] = map[string]any{"ok": true}
		}
	}

	checks["login_throttle"] = map[string]any{"tracked": s.Throttle.Len()}
	return c.JSON(http.StatusOK, status)
}

// Blog godoc
// @Summary Blog placeholder
// @Tags System
// @Produce json
// @Success 200 {object} simpleResponse
// @Router /blog [get]
func (s *Server) Blog(c echo.Context) error {
	return c.JSON(http.StatusOK, simpleResponse{Success: true, Message: "Blog coming soon"})
}
