package handlers

import (
	"net/http"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedMonths = 3
	maxSeedMonths     = 24
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seeder services.DemoSeederInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(seeder services.DemoSeederInterface) *DevHandler {
	return &DevHandler{seeder: seeder}
}

// SeedDemoData fills the caller's ledger with demo categories, budgets and
// transactions
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - months: months of history to generate (default: 3, max: 24)
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}
	email, _ := c.Get("user_email").(string)

	months := getIntParam(c, "months", defaultSeedMonths)
	if months < 1 {
		months = 1
	}
	if months > maxSeedMonths {
		months = maxSeedMonths
	}

	report, err := h.seeder.Seed(c.Request().Context(), &models.User{ID: userID, Email: email}, months)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Demo data seeded successfully", map[string]interface{}{
		"seed": report,
	})
}
