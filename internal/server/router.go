package server

import (
	"fmt"
	"net/http"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the Echo instance serving /health, /metrics and the
// authenticated /api/v1 routes.
func NewRouter(
	cfg *config.Config,
	c *Container,
	db handlers.HealthChecker,
	limiter *middleware.IPRateLimiter,
	gatherer prometheus.Gatherer,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(fmt.Sprintf("%dM", cfg.Security.MaxUploadSizeMB)))
	e.Use(limiter.Middleware())

	healthHandler := handlers.NewHealthCheckHandler(db)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1", middleware.RequireAuth(c.TokenService, c.Users))

	categoryHandler := handlers.NewCategoryHandler(c.CategoryService)
	transactionHandler := handlers.NewTransactionHandler(c.TransactionService)
	dashboardHandler := handlers.NewDashboardHandler(c.DashboardService)

	transactions := api.Group("/transactions")
	transactions.GET("/fetch-categories", categoryHandler.FetchCategories)
	transactions.POST("/add-category", categoryHandler.AddCategory)
	transactions.DELETE("/delete-category/:id", categoryHandler.DeleteCategory)
	transactions.GET("/fetch-transactions", transactionHandler.FetchTransactions)
	transactions.GET("/filter-transactions", transactionHandler.FilterTransactions)
	transactions.POST("/add-transaction", transactionHandler.AddTransaction)
	transactions.DELETE("/delete-transaction/:id", transactionHandler.DeleteTransaction)
	transactions.GET("/fetch-chart-data", dashboardHandler.FetchChartData)
	transactions.GET("/fetch-dashboard-analysis", dashboardHandler.FetchDashboardAnalysis)
	transactions.GET("/fetch-dashboard-transactions", dashboardHandler.FetchDashboardTransactions)

	budgetHandler := handlers.NewBudgetHandler(c.BudgetService)
	budgets := api.Group("/budgets")
	budgets.GET("/fetch-budgets", budgetHandler.FetchBudgets)
	budgets.POST("/add-budget", budgetHandler.AddBudget)
	budgets.PUT("/update-budget/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/delete-budget/:id", budgetHandler.DeleteBudget)
	budgets.GET("/fetch-budget-chart-data", budgetHandler.FetchBudgetChartData)

	notificationHandler := handlers.NewNotificationHandler(c.NotificationService)
	notifications := api.Group("/notifications")
	notifications.GET("/fetch-notifications", notificationHandler.FetchNotifications)
	notifications.GET("/fetch-unread-notifications", notificationHandler.FetchUnreadNotifications)
	notifications.POST("/mark-as-read", notificationHandler.MarkAsRead)
	notifications.POST("/mark-all-as-read", notificationHandler.MarkAllAsRead)

	feedbackHandler := handlers.NewFeedbackHandler(c.FeedbackService)
	feedback := api.Group("/feedback")
	feedback.POST("/submit-feedback", feedbackHandler.SubmitFeedback)
	feedback.GET("/fetch-feedback", feedbackHandler.FetchFeedback)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(c.DemoSeeder)
		api.POST("/dev/seed", devHandler.SeedDemoData)
	}

	return e
}
