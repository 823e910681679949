package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the failure form of the API envelope {success, message, body}
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Body    ErrorBody `json:"body"`
}

// ErrorBody carries the machine-readable part of a failure
type ErrorBody struct {
	Code    string              `json:"code"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Details []string            `json:"details,omitempty"`
	TraceID string              `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Body.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Message = message
	}
}

// WithErrors attaches field-level validation messages
func WithErrors(fieldErrors map[string][]string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Body.Errors = fieldErrors
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Success: false,
		Message: GetErrorMessage(code),
		Body: ErrorBody{
			Code:    string(code),
			TraceID: traceID,
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a 422 response listing the messages of every invalid field
func NewValidationError(fieldErrors map[string][]string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithErrors(fieldErrors), WithDetails(flatten(fieldErrors)...))
}

func flatten(fieldErrors map[string][]string) []string {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		for _, message := range fieldErrors[field] {
			details = append(details, fmt.Sprintf("%s: %s", field, message))
		}
	}
	return details
}

// WrapSystemError wraps an internal error with a generic system error message
// The internal error is returned separately for server-side logging
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError wraps a database error with a generic system error message
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 401 Unauthorized - Authentication failures
	case AuthInvalidToken, AuthMissingToken, AuthExpiredToken, AuthInvalidTokenFormat:
		return http.StatusUnauthorized

	// 403 Forbidden - another user's resource
	case AuthInsufficientPermission:
		return http.StatusForbidden

	// 404 Not Found
	case CategoryNotFound, TransactionNotFound, BudgetNotFound, NotificationNotFound, SystemRouteNotFound:
		return http.StatusNotFound

	// 409 Conflict
	case CategoryInUse:
		return http.StatusConflict

	// 422 Unprocessable Entity - every validation failure
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidID, ValidationInvalidDate,
		CategoryAlreadyExists, TransactionValidationFailed, TransactionAttachmentFailed,
		BudgetValidationFailed, FeedbackValidationFailed:
		return http.StatusUnprocessableEntity

	// 429 Too Many Requests
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 503 Service Unavailable
	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Body.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Body.Code, er.Message, er.Body.TraceID)
}
