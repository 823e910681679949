package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

const attachmentsField = "attachments[]"

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getUUIDParam parses a path parameter as a UUID
func getUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// bindAndValidate binds the request and runs struct validation. It reports
// whether the handler may continue; on false the response is already written.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		if fields := validation.FieldErrors(err); fields != nil {
			return false, SendValidationError(c, fields)
		}
		return false, SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	return true, nil
}

// formFiles returns the uploaded files under attachments[] (or attachments)
// of a multipart request, nil for any other content type.
func formFiles(c echo.Context) ([]*multipart.FileHeader, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		if err == http.ErrNotMultipart {
			return nil, nil
		}
		return nil, err
	}

	files := form.File[attachmentsField]
	if len(files) == 0 {
		files = form.File["attachments"]
	}
	return files, nil
}
