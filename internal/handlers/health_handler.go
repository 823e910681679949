package handlers

import (
	"context"
	"net/http"
	"time"

	apierrors "finance-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthChecker reports whether the database answers
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db HealthChecker
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db HealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck checks API and database connectivity
//
// Method: GET /health
// Authentication: None
//
// Error Responses:
//   - 503: SYSTEM_003 when the database does not answer
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		return SendError(c, apierrors.SystemServiceUnavailable, apierrors.WithDetails("Database connection failed"))
	}

	return SendSuccess(c, http.StatusOK, "Service is healthy", map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
