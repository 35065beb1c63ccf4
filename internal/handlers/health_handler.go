package handlers

import (
	"net/http"
	"time"

	"budget-planner/internal/errors"
	"budget-planner/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthChecker reports whether a backing store is reachable
type HealthChecker interface {
	HealthCheck() error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db     HealthChecker
	ledger services.LedgerServiceInterface
}

// NewHealthCheckHandler creates a new health check handler. db may be nil when
// database exports are disabled.
func NewHealthCheckHandler(db HealthChecker, ledger services.LedgerServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, ledger: ledger}
}

// HealthCheck reports service status, ledger size and snapshot database connectivity
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	database := "disabled"
	if h.db != nil {
		if err := h.db.HealthCheck(); err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
		database = "connected"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"database":     database,
		"transactions": h.ledger.Count(),
		"time":         time.Now().UTC().Format(time.RFC3339),
	})
}
