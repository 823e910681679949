package server

import (
	"log/slog"

	"finance-tracker/internal/config"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"
	"finance-tracker/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Container holds the repositories and services shared by the HTTP server and
// the CLI commands.
type Container struct {
	Users         repositories.UserRepositoryInterface
	Categories    repositories.CategoryRepositoryInterface
	Transactions  repositories.TransactionRepositoryInterface
	Budgets       repositories.BudgetRepositoryInterface
	Notifications repositories.NotificationRepositoryInterface
	Feedback      repositories.FeedbackRepositoryInterface

	TokenService        services.TokenServiceInterface
	CategoryService     services.CategoryServiceInterface
	TransactionService  services.TransactionServiceInterface
	BudgetService       services.BudgetServiceInterface
	DashboardService    services.DashboardServiceInterface
	NotificationService services.NotificationServiceInterface
	FeedbackService     services.FeedbackServiceInterface
	DemoSeeder          services.DemoSeederInterface
}

// NewContainer wires every repository and service. Metrics are registered on
// reg; publisher receives budget alert mail.
func NewContainer(
	cfg *config.Config,
	db *gorm.DB,
	publisher services.MailPublisherInterface,
	reg prometheus.Registerer,
	logger *slog.Logger,
) (*Container, error) {
	attachments, err := storage.NewLocalStore(cfg.Storage.AttachmentsDir)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Users:         repositories.NewUserRepository(db),
		Categories:    repositories.NewCategoryRepository(db),
		Transactions:  repositories.NewTransactionRepository(db),
		Budgets:       repositories.NewBudgetRepository(db),
		Notifications: repositories.NewNotificationRepository(db),
		Feedback:      repositories.NewFeedbackRepository(db),
		TokenService:  services.NewTokenService(&cfg.JWT),
	}

	clock := services.SystemClock{}
	metrics := services.NewPrometheusMetrics(reg)
	events := services.NewEventLogger(logger)
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.Notification.BreakerMaxFailures,
		ResetTimeout:    cfg.Notification.BreakerResetTimeout,
		HalfOpenMaxSucc: 1,
		Clock:           clock,
	})

	aggregation := services.NewAggregationService(c.Transactions, c.Budgets, logger)
	c.NotificationService = services.NewNotificationService(
		c.Notifications,
		c.Users,
		publisher,
		breaker,
		metrics,
		events,
		clock,
		services.NotificationConfig{
			AlmostExceededMargin: cfg.Notification.AlmostExceededMargin,
			DeliveryTimeout:      cfg.Notification.DeliveryTimeout,
		},
		logger,
	)
	c.CategoryService = services.NewCategoryService(c.Categories, events, logger)
	c.TransactionService = services.NewTransactionService(
		c.Transactions,
		c.Categories,
		c.Budgets,
		aggregation,
		c.NotificationService,
		attachments,
		metrics,
		events,
		logger,
	)
	c.BudgetService = services.NewBudgetService(
		c.Budgets,
		c.Categories,
		aggregation,
		c.NotificationService,
		clock,
		metrics,
		events,
		logger,
	)
	c.DashboardService = services.NewDashboardService(c.Transactions, c.Notifications, clock, logger)
	c.FeedbackService = services.NewFeedbackService(c.Feedback, attachments, metrics, events, logger)
	c.DemoSeeder = services.NewDemoSeeder(
		c.Users,
		c.Categories,
		c.Budgets,
		c.Transactions,
		services.NewLedgerGenerator(0),
		clock,
		logger,
	)

	return c, nil
}
