package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Omit("Category").Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.WithContext(ctx).Preload("Category").First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// List returns one page of the user's transactions, newest first, plus the
// total number of rows matching the filters
func (r *transactionRepository) List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.filtered(ctx, filters).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.filtered(ctx, filters).
		Preload("Category").
		Order("created_at DESC").
		Order("transaction_date DESC").
		Offset(filters.Offset()).
		Limit(filters.PerPage).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions with filters: %w", err)
	}

	return transactions, total, nil
}

func (r *transactionRepository) filtered(ctx context.Context, filters models.TransactionFilters) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", filters.UserID)

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.StartDate != nil {
		query = query.Where("transaction_date >= ?", filters.StartDate.UTC())
	}
	if filters.EndDate != nil {
		query = query.Where("transaction_date <= ?", filters.EndDate.UTC())
	}

	return query
}

// Delete removes a transaction
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// GetRecentByUserID retrieves the latest transactions of a user
func (r *transactionRepository) GetRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

type amountTotal struct {
	Total decimal.Decimal
}

// SumAmount totals the user's transactions on the given categories whose
// transaction_date falls inside window, bounds included. An empty category set
// sums to zero without touching the database.
func (r *transactionRepository) SumAmount(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID, window models.DateRange) (decimal.Decimal, error) {
	if len(categoryIDs) == 0 {
		return decimal.Zero, nil
	}

	window = window.UTC()
	var result amountTotal
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Where("category_id IN ?", categoryIDs).
		Where("transaction_date >= ? AND transaction_date <= ?", window.Start, window.End).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}

	return result.Total, nil
}

// SumByType totals the user's transactions of one type inside window
func (r *transactionRepository) SumByType(ctx context.Context, userID uuid.UUID, transactionType string, window models.DateRange) (decimal.Decimal, error) {
	window = window.UTC()
	var result amountTotal
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ?", userID, transactionType).
		Where("transaction_date >= ? AND transaction_date <= ?", window.Start, window.End).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s transactions: %w", transactionType, err)
	}

	return result.Total, nil
}

// GetTotalsByType returns lifetime totals grouped by transaction type
func (r *transactionRepository) GetTotalsByType(ctx context.Context, userID uuid.UUID) ([]models.TypeTotal, error) {
	var totals []models.TypeTotal
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total_amount").
		Where("user_id = ?", userID).
		Group("type").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get totals by type: %w", err)
	}
	return totals, nil
}
