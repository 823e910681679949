package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "Auth Missing Token", code: AuthMissingToken, expected: "Authorization token is required"},
		{name: "Validation General", code: ValidationGeneral, expected: "Validation failed"},
		{name: "Category In Use", code: CategoryInUse, expected: "Category is in use by transactions or budgets"},
		{name: "Budget Not Found", code: BudgetNotFound, expected: "Budget not found"},
		{name: "Notification Not Found", code: NotificationNotFound, expected: "Notification not found"},
		{name: "System Internal Error", code: SystemInternalError, expected: "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for code := range errorMessages {
		s.True(IsValidErrorCode(code), string(code))
	}
	s.False(IsValidErrorCode("CUSTOMER_001"))
	s.False(IsValidErrorCode(""))
}

func (s *CodesTestSuite) TestEveryCodeHasExplicitStatus() {
	for code := range errorMessages {
		status := GetHTTPStatus(code)
		s.GreaterOrEqual(status, 400, string(code))
	}
}

func (s *CodesTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{AuthMissingToken, 401},
		{AuthExpiredToken, 401},
		{AuthInsufficientPermission, 403},
		{CategoryNotFound, 404},
		{TransactionNotFound, 404},
		{BudgetNotFound, 404},
		{NotificationNotFound, 404},
		{CategoryInUse, 409},
		{ValidationGeneral, 422},
		{CategoryAlreadyExists, 422},
		{BudgetValidationFailed, 422},
		{FeedbackValidationFailed, 422},
		{SystemRateLimitExceeded, 429},
		{SystemServiceUnavailable, 503},
		{SystemInternalError, 500},
		{"UNKNOWN", 500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}
