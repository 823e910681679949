package services

import (
	"context"
	"mime/multipart"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/mail"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// CategoryServiceInterface defines category management operations
type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// TransactionServiceInterface defines ledger operations
type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filters models.TransactionFilters) (*models.TransactionPage, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error
}

// BudgetServiceInterface defines budget management and reporting operations
type BudgetServiceInterface interface {
	CreateBudget(ctx context.Context, userID uuid.UUID, req *dto.BudgetRequest) (*models.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, req *dto.BudgetRequest) (*models.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error
	FetchBudgets(ctx context.Context, userID uuid.UUID) (*models.BudgetOverview, error)
	RollOver(ctx context.Context, userID uuid.UUID) (int, error)
	BudgetChartData(ctx context.Context, userID uuid.UUID) (*models.BudgetChart, error)
}

// AggregationServiceInterface computes budget consumption from the ledger
type AggregationServiceInterface interface {
	SummarizeBudget(ctx context.Context, budget *models.Budget) (*models.BudgetSummary, error)
	SummarizePurpose(ctx context.Context, userID uuid.UUID, purpose models.Purpose) (*models.PurposeSummary, error)
}

// NotificationServiceInterface evaluates budget thresholds and manages the inbox
type NotificationServiceInterface interface {
	EvaluateBudget(ctx context.Context, summary *models.BudgetSummary) (*models.Notification, error)
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
	ListUnread(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) (*models.Notification, error)
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	WaitForDeliveries(ctx context.Context) error
}

// DashboardServiceInterface serves the dashboard widgets
type DashboardServiceInterface interface {
	ChartData(ctx context.Context, userID uuid.UUID) (*models.ChartData, error)
	Analysis(ctx context.Context, userID uuid.UUID) (*models.DashboardAnalysis, error)
	RecentTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

// FeedbackServiceInterface accepts product feedback
type FeedbackServiceInterface interface {
	SubmitFeedback(ctx context.Context, userID uuid.UUID, req *dto.SubmitFeedbackRequest) (*models.Feedback, error)
	ListFeedback(ctx context.Context, userID uuid.UUID) ([]models.Feedback, error)
}

// LedgerGeneratorInterface builds realistic demo ledger entries
type LedgerGeneratorInterface interface {
	GenerateLedger(userID uuid.UUID, categoryIDs map[string]uuid.UUID, start, end time.Time) []*models.Transaction
}

// DemoSeederInterface populates a database with demo data
type DemoSeederInterface interface {
	Seed(ctx context.Context, user *models.User, months int) (*models.SeedReport, error)
}

// TokenServiceInterface defines bearer token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MailPublisherInterface hands budget alerts to the mail pipeline
type MailPublisherInterface interface {
	PublishBudgetAlert(ctx context.Context, msg *mail.BudgetAlertMessage) error
}

// AttachmentStoreInterface persists uploaded files
type AttachmentStoreInterface interface {
	Save(ctx context.Context, folder string, file *multipart.FileHeader) (string, error)
	Remove(relPath string) error
}

// CircuitBreakerInterface guards calls to the mail broker
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// MetricsRecorderInterface records service metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// EventLoggerInterface writes structured domain events
type EventLoggerInterface interface {
	LogTransactionCreated(ctx context.Context, transactionID, userID uuid.UUID, transactionType, amount string)
	LogTransactionDeleted(ctx context.Context, transactionID, userID uuid.UUID)
	LogCategoryCreated(ctx context.Context, categoryID uuid.UUID, name string)
	LogCategoryDeleted(ctx context.Context, categoryID uuid.UUID, name string)
	LogBudgetSaved(ctx context.Context, budgetID, userID uuid.UUID, action string)
	LogBudgetDeleted(ctx context.Context, budgetID, userID uuid.UUID)
	LogBudgetRolledOver(ctx context.Context, budgetID uuid.UUID, oldStart, newStart time.Time)
	LogNotificationCreated(ctx context.Context, notificationID, budgetID uuid.UUID, notificationType string)
	LogNotificationSuppressed(ctx context.Context, budgetID uuid.UUID, dedupKey string)
	LogMailDeliveryFailed(ctx context.Context, notificationID uuid.UUID, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogFeedbackSubmitted(ctx context.Context, feedbackID, userID uuid.UUID, feedbackType string)
}
