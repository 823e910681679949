package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

// statusCodes translates statuses raised by echo itself (routing, body limit,
// rate limiter, auth middleware) into envelope error codes.
var statusCodes = map[int]apierrors.ErrorCode{
	http.StatusBadRequest:            apierrors.ValidationInvalidFormat,
	http.StatusUnauthorized:          apierrors.AuthMissingToken,
	http.StatusForbidden:             apierrors.AuthInsufficientPermission,
	http.StatusNotFound:              apierrors.SystemRouteNotFound,
	http.StatusMethodNotAllowed:      apierrors.SystemRouteNotFound,
	http.StatusRequestEntityTooLarge: apierrors.ValidationOutOfRange,
	http.StatusUnprocessableEntity:   apierrors.ValidationGeneral,
	http.StatusTooManyRequests:       apierrors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   apierrors.SystemInternalError,
	http.StatusServiceUnavailable:    apierrors.SystemServiceUnavailable,
}

func mapHTTPStatusToErrorCode(status int) apierrors.ErrorCode {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return apierrors.SystemUnexpectedError
}

// CustomHTTPErrorHandler renders any error that escaped a handler as the
// {success, message, body} envelope, logs it and counts it.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	resp, status := classifyError(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	req := c.Request()
	slog.Log(req.Context(), level, "request failed",
		slog.String("trace_id", traceID),
		slog.String("error_code", resp.Body.Code),
		slog.Int("status", status),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("error", err.Error()),
	)
	apiErrorsTotal.WithLabelValues(resp.Body.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, resp); sendErr != nil {
		slog.Error("failed to write error response", "trace_id", traceID, "error", sendErr)
	}
}

func classifyError(err error, traceID string) (*apierrors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		resp := apierrors.NewErrorResponse(
			mapHTTPStatusToErrorCode(httpErr.Code),
			traceID,
			apierrors.WithMessage(fmt.Sprint(httpErr.Message)),
		)
		return resp, httpErr.Code
	}

	if fields := validation.FieldErrors(err); fields != nil {
		return apierrors.NewValidationError(fields, traceID), http.StatusUnprocessableEntity
	}

	if errors.Is(err, context.DeadlineExceeded) {
		resp := apierrors.NewErrorResponse(apierrors.SystemServiceUnavailable, traceID)
		return resp, resp.GetHTTPStatus()
	}

	resp, _ := apierrors.WrapSystemError(err, traceID)
	return resp, resp.GetHTTPStatus()
}
