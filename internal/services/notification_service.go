package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"finance-tracker/internal/mail"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const mailBreakerService = "mail"

// Budget evaluation outcomes reported to metrics.
const (
	EvaluationNone       = "none"
	EvaluationCreated    = "created"
	EvaluationSuppressed = "suppressed"
)

// NotificationConfig tunes threshold evaluation and mail hand-off.
type NotificationConfig struct {
	AlmostExceededMargin decimal.Decimal
	DeliveryTimeout      time.Duration
}

type notificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	userRepo         repositories.UserRepositoryInterface
	publisher        MailPublisherInterface
	breaker          CircuitBreakerInterface
	metrics          MetricsRecorderInterface
	events           EventLoggerInterface
	clock            Clock
	config           NotificationConfig
	logger           *slog.Logger
	deliveries       sync.WaitGroup
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	publisher MailPublisherInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	events EventLoggerInterface,
	clock Clock,
	config NotificationConfig,
	logger *slog.Logger,
) NotificationServiceInterface {
	if config.DeliveryTimeout <= 0 {
		config.DeliveryTimeout = 5 * time.Second
	}
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		publisher:        publisher,
		breaker:          breaker,
		metrics:          metrics,
		events:           events,
		clock:            clock,
		config:           config,
		logger:           logger,
	}
}

// ClassifyRemaining maps a remaining budget onto a notification type. Zero or
// less is exceeded; up to and including margin is almost exceeded.
func ClassifyRemaining(remaining, margin decimal.Decimal) (string, bool) {
	if !remaining.IsPositive() {
		return models.NotificationTypeExceeded, true
	}
	if remaining.LessThanOrEqual(margin) {
		return models.NotificationTypeAlmostExceeded, true
	}
	return "", false
}

// EvaluateBudget records a notification when the summary crosses a threshold.
// At most one notification per type is stored for a budget window; repeats
// return nil. Mail is handed off asynchronously and its failure never surfaces.
func (s *notificationService) EvaluateBudget(ctx context.Context, summary *models.BudgetSummary) (*models.Notification, error) {
	notificationType, crossed := ClassifyRemaining(summary.Remaining, s.config.AlmostExceededMargin)
	if !crossed {
		s.metrics.IncrementCounter(MetricBudgetEvaluated, map[string]string{"outcome": EvaluationNone})
		return nil, nil
	}

	dedupKey := models.NotificationDedupKey(summary.UserID, summary.ID, notificationType, summary.StartDate)
	exists, err := s.notificationRepo.ExistsByDedupKey(ctx, dedupKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check notification history: %w", err)
	}
	if exists {
		s.suppressed(ctx, summary.ID, dedupKey)
		return nil, nil
	}

	budgetID := summary.ID
	notification := &models.Notification{
		UserID:           summary.UserID,
		BudgetID:         &budgetID,
		Category:         summary.CategoryLabel,
		NotificationType: notificationType,
		BudgetedAmount:   summary.Amount,
		RemainingBudget:  summary.Remaining,
		Message:          models.BudgetNotificationMessage(summary.Amount, summary.Remaining),
		DedupKey:         dedupKey,
		CreatedAt:        s.clock.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		if errors.Is(err, repositories.ErrDuplicateNotification) {
			s.suppressed(ctx, summary.ID, dedupKey)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.metrics.IncrementCounter(MetricBudgetEvaluated, map[string]string{"outcome": EvaluationCreated})
	s.metrics.IncrementCounter(MetricNotificationCreated, map[string]string{"notification_type": notificationType})
	s.events.LogNotificationCreated(ctx, notification.ID, budgetID, notificationType)

	categoryType := ""
	if summary.Category != nil {
		categoryType = summary.Category.TypeOrEmpty()
	}
	s.deliver(ctx, notification, categoryType)

	return notification, nil
}

func (s *notificationService) suppressed(ctx context.Context, budgetID uuid.UUID, dedupKey string) {
	s.metrics.IncrementCounter(MetricBudgetEvaluated, map[string]string{"outcome": EvaluationSuppressed})
	s.events.LogNotificationSuppressed(ctx, budgetID, dedupKey)
}

// deliver publishes the alert in the background. The request context is
// detached so a finished request does not cancel the hand-off.
func (s *notificationService) deliver(ctx context.Context, notification *models.Notification, categoryType string) {
	s.deliveries.Add(1)
	go func() {
		defer s.deliveries.Done()

		deliveryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.DeliveryTimeout)
		defer cancel()

		if err := s.publish(deliveryCtx, notification, categoryType); err != nil {
			s.logger.WarnContext(deliveryCtx, "budget alert mail not sent",
				slog.String("notification_id", notification.ID.String()),
				slog.String("error", err.Error()))
			s.events.LogMailDeliveryFailed(deliveryCtx, notification.ID, err.Error())
		}
	}()
}

func (s *notificationService) publish(ctx context.Context, notification *models.Notification, categoryType string) error {
	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter(MetricMailDelivery, map[string]string{"status": "skipped"})
		return ErrCircuitBreakerOpen
	}

	user, err := s.userRepo.GetByID(ctx, notification.UserID)
	if err != nil {
		s.metrics.IncrementCounter(MetricMailDelivery, map[string]string{"status": "no_recipient"})
		return fmt.Errorf("failed to load recipient: %w", err)
	}

	msg := &mail.BudgetAlertMessage{
		NotificationID:   notification.ID,
		UserID:           user.ID,
		Email:            user.Email,
		RecipientName:    user.DisplayName(),
		Category:         notification.Category,
		CategoryType:     categoryType,
		NotificationType: notification.NotificationType,
		BudgetedAmount:   notification.BudgetedAmount,
		RemainingBudget:  notification.RemainingBudget,
		Message:          notification.Message,
		CreatedAt:        notification.CreatedAt,
	}

	start := time.Now()
	err = s.publisher.PublishBudgetAlert(ctx, msg)
	s.metrics.RecordProcessingTime(MetricMailPublishDuration, time.Since(start))

	previous := s.breaker.GetState()
	if err != nil {
		s.breaker.RecordFailure()
		s.recordBreakerTransition(ctx, previous)
		s.metrics.IncrementCounter(MetricMailDelivery, map[string]string{"status": "failed"})
		return fmt.Errorf("failed to publish budget alert: %w", err)
	}

	s.breaker.RecordSuccess()
	s.recordBreakerTransition(ctx, previous)
	s.metrics.IncrementCounter(MetricMailDelivery, map[string]string{"status": "queued"})
	return nil
}

func (s *notificationService) recordBreakerTransition(ctx context.Context, previous models.CircuitBreakerState) {
	current := s.breaker.GetState()
	if current == previous {
		return
	}
	s.metrics.RecordGauge(MetricCircuitBreakerState, float64(current), map[string]string{"service": mailBreakerService})
	s.events.LogCircuitBreakerStateChange(ctx, mailBreakerService, previous.String(), current.String())
}

// WaitForDeliveries blocks until background mail hand-offs finish or ctx ends.
func (s *notificationService) WaitForDeliveries(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.deliveries.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) ListUnread(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.GetUnreadByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkAsRead stamps the notification read. Notifications of other users are
// reported as not found. Marking twice keeps the first timestamp.
func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) (*models.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	if notification.UserID != userID {
		return nil, ErrNotificationNotFound
	}
	if notification.IsRead() {
		return notification, nil
	}

	readAt := s.clock.Now()
	if err := s.notificationRepo.MarkAsRead(ctx, notificationID, readAt); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	notification.ReadAt = &readAt

	return notification, nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.notificationRepo.MarkAllAsRead(ctx, userID, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return updated, nil
}
