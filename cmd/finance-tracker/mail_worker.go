package main

import (
	"fmt"
	"log/slog"

	"finance-tracker/internal/config"
	"finance-tracker/internal/mail"

	"github.com/spf13/cobra"
)

func mailWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mail-worker",
		Short: "Deliver queued budget alert mail",
		Long:  `Consume budget alerts from RabbitMQ, render them and send them over SMTP.`,
		RunE:  runMailWorker,
	}
}

func runMailWorker(cmd *cobra.Command, _ []string) error {
	logger := slog.Default()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Mail.AMQPURL == "" {
		return fmt.Errorf("AMQP_URL is required for the mail worker")
	}

	client, err := mail.NewClient(cfg.Mail.AMQPURL, cfg.Mail.Exchange, cfg.Mail.Queue)
	if err != nil {
		return fmt.Errorf("failed to connect to message broker: %w", err)
	}
	defer func() { _ = client.Close() }()

	renderer, err := mail.NewRenderer(cfg.Mail.Currency, cfg.Mail.AppURL)
	if err != nil {
		return fmt.Errorf("failed to load mail templates: %w", err)
	}

	sender := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.Mail.SMTPHost,
		Port:     cfg.Mail.SMTPPort,
		Username: cfg.Mail.SMTPUsername,
		Password: cfg.Mail.SMTPPassword,
		From:     cfg.Mail.From,
	})

	logger.Info("mail worker started",
		slog.String("queue", cfg.Mail.Queue),
		slog.String("smtp_host", cfg.Mail.SMTPHost))

	return mail.NewWorker(client, renderer, sender, logger).Run(cmd.Context())
}
