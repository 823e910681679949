package repositories

import (
	"context"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)

	// Aggregation queries
	SumAmount(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID, window models.DateRange) (decimal.Decimal, error)
	SumByType(ctx context.Context, userID uuid.UUID, transactionType string, window models.DateRange) (decimal.Decimal, error)
	GetTotalsByType(ctx context.Context, userID uuid.UUID) ([]models.TypeTotal, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
	GetByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]models.Budget, error)
	GetByPurpose(ctx context.Context, userID uuid.UUID, purpose models.Purpose) ([]models.Budget, error)
	GetDistinctPurposes(ctx context.Context, userID uuid.UUID) ([]models.Purpose, error)
	GetExpiredAutoReset(ctx context.Context, userID uuid.UUID, before time.Time) ([]models.Budget, error)
	GetAmountsByCategory(ctx context.Context, userID uuid.UUID) ([]models.CategoryAmount, error)
	Update(ctx context.Context, budget *models.Budget) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotificationRepositoryInterface defines the contract for notification repository operations
type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ExistsByDedupKey(ctx context.Context, dedupKey string) (bool, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
	GetUnreadByUserID(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, id uuid.UUID, readAt time.Time) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error)
}

// FeedbackRepositoryInterface defines the contract for feedback repository operations
type FeedbackRepositoryInterface interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Feedback, error)
}
