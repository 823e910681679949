package handlers

import (
	"net/http"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the dashboard widgets
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// FetchChartData returns income and expenses for the last six months
//
// Method: GET /api/v1/transactions/fetch-chart-data
// Authentication: Required
func (h *DashboardHandler) FetchChartData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	chart, err := h.dashboardService.ChartData(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Chart data fetched successfully", chart)
}

// FetchDashboardAnalysis returns lifetime totals per type and the unread count
//
// Method: GET /api/v1/transactions/fetch-dashboard-analysis
// Authentication: Required
func (h *DashboardHandler) FetchDashboardAnalysis(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	analysis, err := h.dashboardService.Analysis(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Dashboard analysis fetched successfully", map[string]interface{}{
		"analysis":             analysis,
		"unread_notifications": analysis.UnreadNotifications,
	})
}

// FetchDashboardTransactions returns the five latest transactions
//
// Method: GET /api/v1/transactions/fetch-dashboard-transactions
// Authentication: Required
func (h *DashboardHandler) FetchDashboardTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactions, err := h.dashboardService.RecentTransactions(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Dashboard transactions fetched successfully", map[string]interface{}{
		"transactions": transactions,
	})
}
