package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles ledger HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// FetchTransactions returns the caller's transactions newest first
//
// Method: GET /api/v1/transactions/fetch-transactions
// Authentication: Required
//
// Query Parameters:
//   - type: income, expenses or savings; any other value is ignored
//   - page: page number, default 1
func (h *TransactionHandler) FetchTransactions(c echo.Context) error {
	return h.list(c, false)
}

// FilterTransactions is FetchTransactions with an optional date window
//
// Method: GET /api/v1/transactions/filter-transactions
// Authentication: Required
//
// Query Parameters:
//   - start_date, end_date: inclusive bounds; a date-only end_date covers the whole day
//   - type, page: as in FetchTransactions
func (h *TransactionHandler) FilterTransactions(c echo.Context) error {
	return h.list(c, true)
}

func (h *TransactionHandler) list(c echo.Context, withDates bool) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.TransactionListQuery
	if ok, err := bindAndValidate(c, &query); !ok {
		return err
	}

	filters := models.TransactionFilters{
		UserID: userID,
		Type:   query.Type,
		Page:   getIntParam(c, "page", 1),
	}
	if withDates {
		invalid := map[string][]string{}
		if query.StartDate != "" {
			start, err := validation.ParseDate(query.StartDate)
			if err != nil {
				invalid["start_date"] = []string{"The start date is not a valid date."}
			} else {
				filters.StartDate = &start
			}
		}
		if query.EndDate != "" {
			end, err := validation.ParseDate(query.EndDate)
			if err != nil {
				invalid["end_date"] = []string{"The end date is not a valid date."}
			} else {
				if end.Equal(services.StartOfDay(end)) {
					end = services.EndOfDay(end)
				}
				filters.EndDate = &end
			}
		}
		if len(invalid) > 0 {
			return SendValidationError(c, invalid)
		}
		if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
			return SendValidationError(c, map[string][]string{
				"end_date": {"The end date must be a date after or equal to start date."},
			})
		}
	}

	page, err := h.transactionService.ListTransactions(c.Request().Context(), filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Transactions fetched successfully", map[string]interface{}{
		"transactions": page,
	})
}

// AddTransaction records a transaction and evaluates the budgets it touches
//
// Method: POST /api/v1/transactions/add-transaction
// Authentication: Required
//
// Body: JSON or multipart form {category?, amount, type, transaction_date,
// payment_method?, description?, attachments[]?}
//
// Error Responses:
//   - 422: validation failure, unknown category or attachment storage failure
func (h *TransactionHandler) AddTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	files, err := formFiles(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid multipart form"))
	}
	req.Attachments = files

	transaction, err := h.transactionService.CreateTransaction(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Transaction added successfully", map[string]interface{}{
		"transaction": transaction,
	})
}

// DeleteTransaction removes one of the caller's transactions
//
// Method: DELETE /api/v1/transactions/delete-transaction/:id
// Authentication: Required
//
// Error Responses:
//   - 403: transaction belongs to another user
//   - 404: transaction not found
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.TransactionNotFound)
	}

	if err := h.transactionService.DeleteTransaction(c.Request().Context(), userID, id); err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Transaction deleted successfully", nil)
}
