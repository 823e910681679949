package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type EventLogger struct {
	logger *slog.Logger
}

func NewEventLogger(logger *slog.Logger) EventLoggerInterface {
	return &EventLogger{
		logger: logger,
	}
}

func (el *EventLogger) LogTransactionCreated(ctx context.Context, transactionID, userID uuid.UUID, transactionType, amount string) {
	el.logger.InfoContext(ctx, "transaction created",
		slog.String("event_type", "transaction_created"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("user_id", userID.String()),
		slog.String("type", transactionType),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (el *EventLogger) LogTransactionDeleted(ctx context.Context, transactionID, userID uuid.UUID) {
	el.logger.InfoContext(ctx, "transaction deleted",
		slog.String("event_type", "transaction_deleted"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (el *EventLogger) LogCategoryCreated(ctx context.Context, categoryID uuid.UUID, name string) {
	el.logger.InfoContext(ctx, "category created",
		slog.String("event_type", "category_created"),
		slog.String("category_id", categoryID.String()),
		slog.String("name", name),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (el *EventLogger) LogCategoryDeleted(ctx context.Context, categoryID uuid.UUID, name string) {
	el.logger.InfoContext(ctx, "category deleted",
		slog.String("event_type", "category_deleted"),
		slog.String("category_id", categoryID.String()),
		slog.String("name", name),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (el *EventLogger) LogBudgetSaved(ctx context.Context, budgetID, userID uuid.UUID, action string) {
	el.logger.InfoContext(ctx, "budget saved",
		slog.String("event_type", "budget_"+action),
		slog.String("budget_id", budgetID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (el *EventLogger) LogBudgetDeleted(ctx context.Context, budgetID, userID uuid.UUID) {
	el.logger.InfoContext(ctx, "budget deleted",
		slog.String("event_type", "budget_deleted"),
		slog.String("budget_id", budgetID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (el *EventLogger) LogBudgetRolledOver(ctx context.Context, budgetID uuid.UUID, oldStart, newStart time.Time) {
	el.logger.InfoContext(ctx, "budget rolled over",
		slog.String("event_type", "budget_rolled_over"),
		slog.String("budget_id", budgetID.String()),
		slog.Time("old_start", oldStart),
		slog.Time("new_start", newStart),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (el *EventLogger) LogNotificationCreated(ctx context.Context, notificationID, budgetID uuid.UUID, notificationType string) {
	el.logger.InfoContext(ctx, "budget notification created",
		slog.String("event_type", "notification_created"),
		slog.String("notification_id", notificationID.String()),
		slog.String("budget_id", budgetID.String()),
		slog.String("notification_type", notificationType),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (el *EventLogger) LogNotificationSuppressed(ctx context.Context, budgetID uuid.UUID, dedupKey string) {
	el.logger.DebugContext(ctx, "budget notification suppressed",
		slog.String("event_type", "notification_suppressed"),
		slog.String("budget_id", budgetID.String()),
		slog.String("dedup_key", dedupKey),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (el *EventLogger) LogMailDeliveryFailed(ctx context.Context, notificationID uuid.UUID, errorMsg string) {
	el.logger.WarnContext(ctx, "notification mail delivery failed",
		slog.String("event_type", "mail_delivery_failed"),
		slog.String("notification_id", notificationID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (el *EventLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	el.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (el *EventLogger) LogFeedbackSubmitted(ctx context.Context, feedbackID, userID uuid.UUID, feedbackType string) {
	el.logger.InfoContext(ctx, "feedback submitted",
		slog.String("event_type", "feedback_submitted"),
		slog.String("feedback_id", feedbackID.String()),
		slog.String("user_id", userID.String()),
		slog.String("type", feedbackType),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}
