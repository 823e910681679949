package middleware

import (
	"strings"

	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"

	maxClientTraceIDLength = 128
)

// RequestID tags every request with a trace id. A client supplied X-Trace-ID
// is reused; otherwise a UUID is minted. The id is echoed in the response
// header and stored on both the echo context and the request context so
// services can log it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := resolveTraceID(c.Request().Header.Get(TraceIDHeader))

			c.Set(TraceIDContextKey, traceID)
			ctx := services.ContextWithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}

func resolveTraceID(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if incoming == "" || len(incoming) > maxClientTraceIDLength {
		return uuid.NewString()
	}
	return incoming
}

// GetTraceID returns the request's trace id, or "" outside RequestID.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
