// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"bistro/config"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports process liveness.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check is a simple handler to check if the service is up.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.cfg.Env.Env,
	})
}
