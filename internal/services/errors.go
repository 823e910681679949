package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryInUse        = errors.New("category is referenced by transactions or budgets")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrForbidden            = errors.New("resource belongs to another user")
	ErrAttachmentFailed     = errors.New("failed to store attachment")
)

// ValidationError collects per-field messages for a rejected request.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// FieldError returns a ValidationError holding a single message.
func FieldError(field, message string) *ValidationError {
	verr := NewValidationError()
	verr.Add(field, message)
	return verr
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrOrNil returns e as an error when it holds messages, nil otherwise.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
