package handlers

import (
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// requestValidator plugs the shared rule set (money, date_string,
// transaction_type and friends) into echo's c.Validate.
type requestValidator struct {
	rules *validation.Validator
}

func NewValidator() echo.Validator {
	return requestValidator{rules: validation.GetValidator()}
}

func (v requestValidator) Validate(req any) error {
	return v.rules.Struct(req)
}
