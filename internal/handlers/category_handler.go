package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the shared category catalog
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// FetchCategories lists every category ordered by name
//
// Method: GET /api/v1/transactions/fetch-categories
// Authentication: Required
func (h *CategoryHandler) FetchCategories(c echo.Context) error {
	categories, err := h.categoryService.ListCategories(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Categories fetched successfully", map[string]interface{}{
		"categories": categories,
	})
}

// AddCategory creates a category
//
// Method: POST /api/v1/transactions/add-category
// Authentication: Required
//
// Body: {category, type?}
//
// Error Responses:
//   - 422: missing, too long or duplicate name; unknown type
func (h *CategoryHandler) AddCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.categoryService.CreateCategory(c.Request().Context(), &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Category added successfully", map[string]interface{}{
		"category": category,
	})
}

// DeleteCategory removes a category that nothing references
//
// Method: DELETE /api/v1/transactions/delete-category/:id
// Authentication: Required
//
// Error Responses:
//   - 404: category not found
//   - 409: category referenced by a transaction or budget
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.CategoryNotFound)
	}

	if err := h.categoryService.DeleteCategory(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Category deleted successfully", nil)
}
