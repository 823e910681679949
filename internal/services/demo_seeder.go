package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// demoBudgets are the monthly budgets the seeder attaches to the demo user.
var demoBudgets = []struct {
	category string
	amount   int64
	purpose  models.Purpose
}{
	{category: "rent", amount: 120000, purpose: models.PurposeExpenses},
	{category: "groceries", amount: 80000, purpose: models.PurposeExpenses},
	{category: "dining", amount: 40000, purpose: models.Purpose("Leisure")},
	{category: "transport", amount: 30000, purpose: models.PurposeExpenses},
	{category: "emergency fund", amount: 50000, purpose: models.PurposeSavings},
}

type demoSeeder struct {
	userRepo        repositories.UserRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	generator       LedgerGeneratorInterface
	clock           Clock
	logger          *slog.Logger
}

func NewDemoSeeder(
	userRepo repositories.UserRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	generator LedgerGeneratorInterface,
	clock Clock,
	logger *slog.Logger,
) DemoSeederInterface {
	return &demoSeeder{
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		generator:       generator,
		clock:           clock,
		logger:          logger,
	}
}

// Seed upserts user, ensures the demo categories exist, creates monthly
// budgets for the current month and fills the ledger for the last months.
func (s *demoSeeder) Seed(ctx context.Context, user *models.User, months int) (*models.SeedReport, error) {
	if months < 1 {
		months = 1
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to upsert demo user: %w", err)
	}
	report := &models.SeedReport{UserID: user.ID}

	categoryIDs := make(map[string]uuid.UUID, len(DemoCategories))
	for _, demo := range DemoCategories {
		category, created, err := s.ensureCategory(ctx, demo)
		if err != nil {
			return nil, err
		}
		if created {
			report.Categories++
		}
		categoryIDs[category.Name] = category.ID
	}

	now := s.clock.Now()
	window, _ := CalendarWindow(models.BudgetPeriodMonthly, now)
	for _, demo := range demoBudgets {
		budget := &models.Budget{
			UserID:     user.ID,
			CategoryID: categoryIDs[demo.category],
			Amount:     decimal.NewFromInt(demo.amount),
			Period:     models.BudgetPeriodMonthly,
			Purpose:    demo.purpose,
			StartDate:  window.Start,
			EndDate:    window.End,
			AutoReset:  true,
		}
		if err := s.budgetRepo.Create(ctx, budget); err != nil {
			return nil, fmt.Errorf("failed to create demo budget for %s: %w", demo.category, err)
		}
		report.Budgets++
	}

	start := StartOfDay(now.AddDate(0, -months, 0))
	for _, tx := range s.generator.GenerateLedger(user.ID, categoryIDs, start, now) {
		if err := s.transactionRepo.Create(ctx, tx); err != nil {
			return nil, fmt.Errorf("failed to create demo transaction: %w", err)
		}
		report.Transactions++
	}

	s.logger.InfoContext(ctx, "demo data seeded",
		slog.String("user_id", user.ID.String()),
		slog.Int("categories", report.Categories),
		slog.Int("budgets", report.Budgets),
		slog.Int("transactions", report.Transactions))

	return report, nil
}

func (s *demoSeeder) ensureCategory(ctx context.Context, demo DemoCategory) (*models.Category, bool, error) {
	existing, err := s.categoryRepo.GetByName(ctx, demo.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, false, fmt.Errorf("failed to look up category %s: %w", demo.Name, err)
	}

	categoryType := demo.Type
	category := &models.Category{Name: demo.Name, Type: &categoryType}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, false, fmt.Errorf("failed to create category %s: %w", demo.Name, err)
	}
	return category, true, nil
}
