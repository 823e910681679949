package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// FeedbackHandler accepts product feedback
type FeedbackHandler struct {
	feedbackService services.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService services.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// SubmitFeedback stores a feedback entry with optional attachments
//
// Method: POST /api/v1/feedback/submit-feedback
// Authentication: Required
//
// Body: multipart form or JSON {type, title, description, attachments[]?}
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.SubmitFeedbackRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	files, err := formFiles(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid multipart form"))
	}
	req.Attachments = files

	feedback, err := h.feedbackService.SubmitFeedback(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Feedback submitted successfully", map[string]interface{}{
		"feedback": feedback,
	})
}

// FetchFeedback lists the caller's submitted feedback
//
// Method: GET /api/v1/feedback/fetch-feedback
// Authentication: Required
func (h *FeedbackHandler) FetchFeedback(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	feedback, err := h.feedbackService.ListFeedback(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Feedback fetched successfully", map[string]interface{}{
		"feedback": feedback,
	})
}
