package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// FetchBudgets lists the caller's budgets with consumption and the per-purpose
// totals. Listing also rolls expired auto-reset budgets forward and evaluates
// notification thresholds.
//
// Method: GET /api/v1/budgets/fetch-budgets
// Authentication: Required
func (h *BudgetHandler) FetchBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	overview, err := h.budgetService.FetchBudgets(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Budgets fetched successfully", overview)
}

// AddBudget creates a budget
//
// Method: POST /api/v1/budgets/add-budget
// Authentication: Required
//
// Body: {category_id, amount, period?, purpose?, start_date?, end_date?, auto_reset?}
//
// Error Responses:
//   - 422: validation failure, unknown category or inverted window
func (h *BudgetHandler) AddBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.BudgetRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	budget, err := h.budgetService.CreateBudget(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Budget added successfully", map[string]interface{}{
		"budget": budget,
	})
}

// UpdateBudget replaces the fields of one of the caller's budgets
//
// Method: PUT /api/v1/budgets/update-budget/:id
// Authentication: Required
//
// Error Responses:
//   - 403: budget belongs to another user
//   - 404: budget not found
//   - 422: validation failure
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.BudgetNotFound)
	}

	var req dto.BudgetRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	budget, err := h.budgetService.UpdateBudget(c.Request().Context(), userID, id, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Budget updated successfully", map[string]interface{}{
		"budget": budget,
	})
}

// DeleteBudget removes one of the caller's budgets
//
// Method: DELETE /api/v1/budgets/delete-budget/:id
// Authentication: Required
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.BudgetNotFound)
	}

	if err := h.budgetService.DeleteBudget(c.Request().Context(), userID, id); err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Budget deleted successfully", nil)
}

// FetchBudgetChartData returns budgeted amounts summed per category
//
// Method: GET /api/v1/budgets/fetch-budget-chart-data
// Authentication: Required
func (h *BudgetHandler) FetchBudgetChartData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	chart, err := h.budgetService.BudgetChartData(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Chart data fetched successfully", chart)
}
