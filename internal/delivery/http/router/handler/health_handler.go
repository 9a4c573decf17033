package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"pulse/internal/delivery/http/response"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports service liveness, including database reachability.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Check pings the database with a bounded timeout so a stalled pool
// cannot hang the probe.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "Health check failed", slog.Any("error", err))

		return response.InternalServerError(c, "Service is unhealthy")
	}

	return c.String(http.StatusOK, "OK")
}
