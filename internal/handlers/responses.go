package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED RESPONSE PATTERNS
//
// Every response uses the {success, message, body} envelope.
//
// 1. SendSuccess - 2xx responses with a message and an optional body
// 2. SendError - client and business errors (4xx) from an error code
// 3. SendServiceError - maps service sentinels and *services.ValidationError
//    onto codes; anything unknown becomes SendSystemError
// 4. SendSystemError - internal errors; logged with the trace id, returned
//    as SYSTEM_001 without internals
//
// DO NOT USE echo.NewHTTPError() or c.JSON() directly for errors.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse is the success form of the API envelope
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Body    interface{} `json:"body"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = apierrors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendSuccess writes the success envelope. A nil body is sent as {}.
func SendSuccess(c echo.Context, status int, message string, body interface{}) error {
	if body == nil {
		body = map[string]interface{}{}
	}
	return c.JSON(status, SuccessResponse{
		Success: true,
		Message: message,
		Body:    body,
	})
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apierrors.ErrorCode, opts ...apierrors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := apierrors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError sends a 422 listing the messages of every invalid field
func SendValidationError(c echo.Context, fieldErrors map[string][]string) error {
	errorResponse := apierrors.NewValidationError(fieldErrors, getTraceID(c))
	return c.JSON(http.StatusUnprocessableEntity, errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := apierrors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		slog.String("trace_id", traceID),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.String("error", internalErr.Error()),
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError translates an error returned by a service
func SendServiceError(c echo.Context, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return SendValidationError(c, validationErr.Fields)
	}

	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, apierrors.CategoryNotFound)
	case errors.Is(err, services.ErrCategoryInUse):
		return SendError(c, apierrors.CategoryInUse)
	case errors.Is(err, services.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	case errors.Is(err, services.ErrBudgetNotFound):
		return SendError(c, apierrors.BudgetNotFound)
	case errors.Is(err, services.ErrNotificationNotFound):
		return SendError(c, apierrors.NotificationNotFound)
	case errors.Is(err, services.ErrForbidden):
		return SendError(c, apierrors.AuthInsufficientPermission)
	case errors.Is(err, services.ErrAttachmentFailed):
		return SendError(c, apierrors.TransactionAttachmentFailed, apierrors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
