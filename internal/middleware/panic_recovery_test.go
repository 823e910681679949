package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "finance-tracker/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type PanicRecoverySuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoverySuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoverySuite(t *testing.T) {
	suite.Run(t, new(PanicRecoverySuite))
}

func (s *PanicRecoverySuite) newContext(traceID string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/fetch-budgets", nil), rec)
	c.SetPath("/api/fetch-budgets")
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}
	return c, rec
}

func (s *PanicRecoverySuite) TestPanicsBecomeSystemErrors() {
	cases := []struct {
		name      string
		traceID   string
		panicWith any
		wantTrace string
	}{
		{name: "string with trace", traceID: "trace-budget", panicWith: "nil budget", wantTrace: "trace-budget"},
		{name: "error value", traceID: "trace-budget", panicWith: apierrors.ErrorCode("boom"), wantTrace: "trace-budget"},
		{name: "no trace id", panicWith: 7, wantTrace: "unknown"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			c, rec := s.newContext(tc.traceID)
			before := testutil.ToFloat64(apiErrorsTotal.WithLabelValues(string(apierrors.SystemInternalError), "/api/fetch-budgets", "500"))

			s.NotPanics(func() {
				_ = PanicRecovery()(func(echo.Context) error { panic(tc.panicWith) })(c)
			})

			s.Equal(http.StatusInternalServerError, rec.Code)
			var resp apierrors.ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.False(resp.Success)
			s.Equal(string(apierrors.SystemInternalError), resp.Body.Code)
			s.Equal(tc.wantTrace, resp.Body.TraceID)
			s.NotContains(rec.Body.String(), "nil budget")

			after := testutil.ToFloat64(apiErrorsTotal.WithLabelValues(string(apierrors.SystemInternalError), "/api/fetch-budgets", "500"))
			s.Equal(before+1, after)
		})
	}
}

func (s *PanicRecoverySuite) TestCommittedResponseIsLeftAlone() {
	c, rec := s.newContext("trace-stream")

	_ = PanicRecovery()(func(c echo.Context) error {
		_ = c.String(http.StatusOK, "partial")
		panic("late failure")
	})(c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoverySuite) TestHandlerErrorsPassThrough() {
	c, rec := s.newContext("trace-ok")
	wantErr := echo.NewHTTPError(http.StatusTeapot)

	err := PanicRecovery()(func(echo.Context) error { return wantErr })(c)

	s.Equal(wantErr, err)
	s.Equal(http.StatusOK, rec.Code)
}
