package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the notification inbox
type NotificationHandler struct {
	notificationService services.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService services.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// FetchNotifications returns every notification of the caller, newest first
//
// Method: GET /api/v1/notifications/fetch-notifications
// Authentication: Required
func (h *NotificationHandler) FetchNotifications(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	notifications, err := h.notificationService.ListNotifications(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Notifications fetched successfully", map[string]interface{}{
		"notifications": notifications,
	})
}

// FetchUnreadNotifications returns the caller's unread notifications
//
// Method: GET /api/v1/notifications/fetch-unread-notifications
// Authentication: Required
func (h *NotificationHandler) FetchUnreadNotifications(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	notifications, err := h.notificationService.ListUnread(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Unread notifications fetched successfully", map[string]interface{}{
		"notifications": notifications,
	})
}

// MarkAsRead marks one notification read
//
// Method: POST /api/v1/notifications/mark-as-read
// Authentication: Required
//
// Body: {id}
//
// Error Responses:
//   - 404: notification missing or owned by another user
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.MarkAsReadRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return SendError(c, apierrors.NotificationNotFound)
	}

	notification, err := h.notificationService.MarkAsRead(c.Request().Context(), userID, id)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Notification marked as read successfully", map[string]interface{}{
		"notification": notification,
	})
}

// MarkAllAsRead marks every unread notification of the caller read
//
// Method: POST /api/v1/notifications/mark-all-as-read
// Authentication: Required
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	updated, err := h.notificationService.MarkAllAsRead(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "All notifications marked as read successfully", dto.MarkAllAsReadResponse{
		Updated: updated,
	})
}
