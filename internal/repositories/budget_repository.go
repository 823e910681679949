package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if err := r.db.WithContext(ctx).Omit("Category").Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

func (r *budgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	budget := &models.Budget{ID: id}
	if err := r.db.WithContext(ctx).Preload("Category").First(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

func (r *budgetRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

func (r *budgetRepository) GetByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Order("start_date ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets by category: %w", err)
	}
	return budgets, nil
}

// GetByPurpose matches the stored, already normalized purpose exactly
func (r *budgetRepository) GetByPurpose(ctx context.Context, userID uuid.UUID, purpose models.Purpose) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND purpose = ?", userID, purpose).
		Order("start_date ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets by purpose: %w", err)
	}
	return budgets, nil
}

func (r *budgetRepository) GetDistinctPurposes(ctx context.Context, userID uuid.UUID) ([]models.Purpose, error) {
	var purposes []models.Purpose
	if err := r.db.WithContext(ctx).Model(&models.Budget{}).
		Where("user_id = ? AND purpose <> ''", userID).
		Distinct("purpose").
		Order("purpose ASC").
		Pluck("purpose", &purposes).Error; err != nil {
		return nil, fmt.Errorf("failed to get budget purposes: %w", err)
	}
	return purposes, nil
}

// GetExpiredAutoReset returns auto-reset budgets on a calendar period whose
// window ended before the given instant
func (r *budgetRepository) GetExpiredAutoReset(ctx context.Context, userID uuid.UUID, before time.Time) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND auto_reset = ? AND end_date < ?", userID, true, before.UTC()).
		Where("period IN ?", []string{models.BudgetPeriodWeekly, models.BudgetPeriodMonthly, models.BudgetPeriodYearly}).
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get expired budgets: %w", err)
	}
	return budgets, nil
}

// GetAmountsByCategory sums budgeted amounts per category
func (r *budgetRepository) GetAmountsByCategory(ctx context.Context, userID uuid.UUID) ([]models.CategoryAmount, error) {
	var amounts []models.CategoryAmount
	if err := r.db.WithContext(ctx).Model(&models.Budget{}).
		Select("budgets.category_id AS category_id, categories.name AS category_name, COALESCE(SUM(budgets.amount), 0) AS total_amount").
		Joins("JOIN categories ON categories.id = budgets.category_id").
		Where("budgets.user_id = ?", userID).
		Group("budgets.category_id, categories.name").
		Order("categories.name ASC").
		Scan(&amounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get budget amounts by category: %w", err)
	}
	return amounts, nil
}

func (r *budgetRepository) Update(ctx context.Context, budget *models.Budget) error {
	budget.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(budget).
		Select("category_id", "amount", "period", "purpose", "start_date", "end_date", "auto_reset", "updated_at").
		Omit("Category").
		Updates(budget)
	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// Delete removes the budget and detaches notifications that referenced it
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Notification{}).
			Where("budget_id = ?", id).
			Update("budget_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach budget notifications: %w", err)
		}

		result := tx.Delete(&models.Budget{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete budget: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrBudgetNotFound
		}
		return nil
	})
}
