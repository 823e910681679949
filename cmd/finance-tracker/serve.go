package main

import (
	"fmt"
	"log/slog"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/mail"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/server"
	"finance-tracker/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Start the JSON API. Budget alert mail is published to RabbitMQ when
AMQP_URL is set and only logged otherwise.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	var publisher services.MailPublisherInterface
	if cfg.Mail.AMQPURL != "" {
		client, err := mail.NewClient(cfg.Mail.AMQPURL, cfg.Mail.Exchange, cfg.Mail.Queue)
		if err != nil {
			return fmt.Errorf("failed to connect to message broker: %w", err)
		}
		defer func() { _ = client.Close() }()
		publisher = client
	} else {
		logger.Warn("AMQP_URL not set, budget alert mail will only be logged")
		publisher = mail.NewLogPublisher(logger)
	}

	container, err := server.NewContainer(cfg, db.DB, publisher, prometheus.DefaultRegisterer, logger)
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}

	limiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	e := server.NewRouter(cfg, container, db, limiter, prometheus.DefaultGatherer)

	logger.Info("configuration loaded",
		slog.String("environment", cfg.Server.Environment),
		slog.String("database_driver", cfg.Database.Driver))

	return server.Run(ctx, &cfg.Server, e, limiter, container.NotificationService, logger)
}
