package mail

import (
	"context"
	"log/slog"
)

// LogPublisher stands in for the queue when no broker is configured. Alerts
// are written to the log instead of being mailed.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishBudgetAlert(ctx context.Context, msg *BudgetAlertMessage) error {
	p.logger.InfoContext(ctx, "budget alert not queued, no broker configured",
		slog.String("notification_id", msg.NotificationID.String()),
		slog.String("email", msg.Email),
		slog.String("category", msg.Category),
		slog.String("notification_type", msg.NotificationType),
		slog.String("message", msg.Message),
	)
	return nil
}
