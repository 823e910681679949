package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Consumer is the receiving side of the alert queue
type Consumer interface {
	ConsumeBudgetAlerts(ctx context.Context, handler AlertHandler) error
}

// Worker drains the alert queue and mails each alert to its recipient
type Worker struct {
	consumer Consumer
	renderer *Renderer
	sender   Sender
	logger   *slog.Logger
}

func NewWorker(consumer Consumer, renderer *Renderer, sender Sender, logger *slog.Logger) *Worker {
	return &Worker{
		consumer: consumer,
		renderer: renderer,
		sender:   sender,
		logger:   logger,
	}
}

// Run consumes until ctx is cancelled
func (w *Worker) Run(ctx context.Context) error {
	err := w.consumer.ConsumeBudgetAlerts(ctx, w.Handle)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (w *Worker) Handle(ctx context.Context, msg *BudgetAlertMessage) error {
	if msg.Email == "" {
		w.logger.WarnContext(ctx, "dropping budget alert without recipient",
			slog.String("notification_id", msg.NotificationID.String()))
		return nil
	}

	subject, body, err := w.renderer.Render(msg)
	if err != nil {
		return err
	}

	if err := w.sender.Send(ctx, msg.Email, subject, body); err != nil {
		return fmt.Errorf("deliver notification %s: %w", msg.NotificationID, err)
	}

	w.logger.InfoContext(ctx, "budget alert mailed",
		slog.String("event_type", "budget_alert_mailed"),
		slog.String("notification_id", msg.NotificationID.String()),
		slog.String("notification_type", msg.NotificationType),
	)
	return nil
}
