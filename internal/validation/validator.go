package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"finance-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayouts are the accepted input forms for dates, tried in order
var DateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

var ErrInvalidDate = errors.New("invalid date")

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateEntryType)
	_ = v.RegisterValidation("category_type", validateEntryType)
	_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
	_ = v.RegisterValidation("feedback_type", validateFeedbackType)
	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("date_string", validateDateString)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// ParseDate parses a date in any of DateLayouts. Results are in UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// ParseMoney parses a non-negative amount with at most two decimal places
func ParseMoney(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", value)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative")
	}
	if amount.Exponent() < -2 && !amount.Equal(amount.Round(2)) {
		return decimal.Zero, fmt.Errorf("amount must have at most 2 decimal places")
	}
	return amount, nil
}

// FieldErrors converts validator errors into field -> messages keyed by JSON name
func FieldErrors(err error) map[string][]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string][]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = append(fields[fe.Field()], FormatFieldError(fe))
	}
	return fields
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "transaction_type", "category_type":
		return "must be one of: " + strings.Join(models.EntryTypes(), ", ")
	case "budget_period":
		return "must be one of: " + strings.Join(models.BudgetPeriods(), ", ")
	case "feedback_type":
		return "must be one of: bug, feature, improvement, general"
	case "money":
		return "must be a non-negative amount with at most 2 decimal places"
	case "date_string":
		return "must be a valid date (YYYY-MM-DD)"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

func validateEntryType(fl validator.FieldLevel) bool {
	return models.IsValidEntryType(strings.TrimSpace(fl.Field().String()))
}

func validateBudgetPeriod(fl validator.FieldLevel) bool {
	return models.IsRequestableBudgetPeriod(strings.ToLower(strings.TrimSpace(fl.Field().String())))
}

func validateFeedbackType(fl validator.FieldLevel) bool {
	return models.IsValidFeedbackType(strings.TrimSpace(fl.Field().String()))
}

func validateMoney(fl validator.FieldLevel) bool {
	_, err := ParseMoney(fl.Field().String())
	return err == nil
}

func validateDateString(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}
