package services

import (
	"context"
	"fmt"
	"log/slog"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type aggregationService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	logger          *slog.Logger
}

func NewAggregationService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	logger *slog.Logger,
) AggregationServiceInterface {
	return &aggregationService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		logger:          logger,
	}
}

// SummarizeBudget sums the user's ledger entries in the budget's category over
// the budget's window, every transaction type included.
func (s *aggregationService) SummarizeBudget(ctx context.Context, budget *models.Budget) (*models.BudgetSummary, error) {
	spent, err := s.transactionRepo.SumAmount(ctx, budget.UserID, []uuid.UUID{budget.CategoryID}, budget.Window())
	if err != nil {
		return nil, fmt.Errorf("failed to sum budget %s: %w", budget.ID, err)
	}
	return BuildBudgetSummary(*budget, spent), nil
}

// SummarizePurpose aggregates every budget of userID with the given purpose.
// The window spans the earliest start and latest end of those budgets.
func (s *aggregationService) SummarizePurpose(ctx context.Context, userID uuid.UUID, purpose models.Purpose) (*models.PurposeSummary, error) {
	budgets, err := s.budgetRepo.GetByPurpose(ctx, userID, purpose)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets for purpose %q: %w", purpose, err)
	}

	summary := &models.PurposeSummary{
		Purpose:     purpose,
		BudgetCount: len(budgets),
		CategoryIDs: []uuid.UUID{},
		TotalAmount: decimal.Zero,
	}

	seen := make(map[uuid.UUID]bool, len(budgets))
	for i := range budgets {
		b := budgets[i]
		summary.TotalAmount = summary.TotalAmount.Add(b.Amount)
		if !seen[b.CategoryID] {
			seen[b.CategoryID] = true
			summary.CategoryIDs = append(summary.CategoryIDs, b.CategoryID)
		}
		if summary.StartDate == nil || b.StartDate.Before(*summary.StartDate) {
			start := b.StartDate
			summary.StartDate = &start
		}
		if summary.EndDate == nil || b.EndDate.After(*summary.EndDate) {
			end := b.EndDate
			summary.EndDate = &end
		}
	}

	total := decimal.Zero
	if len(budgets) > 0 {
		window := models.DateRange{Start: *summary.StartDate, End: *summary.EndDate}
		total, err = s.transactionRepo.SumAmount(ctx, userID, summary.CategoryIDs, window)
		if err != nil {
			return nil, fmt.Errorf("failed to sum purpose %q: %w", purpose, err)
		}
	}

	fillPurposeTotals(summary, total)
	return summary, nil
}

func fillPurposeTotals(summary *models.PurposeSummary, total decimal.Decimal) {
	summary.SpentOrSaved = total

	if summary.Purpose.Kind() == models.PurposeKindSavings {
		extra := decimal.Max(decimal.Zero, total.Sub(summary.TotalAmount))
		summary.TotalSaved = &total
		summary.ExtraSaved = &extra
		return
	}

	remaining := summary.TotalAmount.Sub(total)
	summary.TotalSpent = &total
	summary.RemainingBudget = &remaining
}

// BuildBudgetSummary derives the consumption fields of budget from spent.
// The colour band is picked from the exact ratio; only the reported
// percentage is rounded.
func BuildBudgetSummary(budget models.Budget, spent decimal.Decimal) *models.BudgetSummary {
	exact := exactPercentage(spent, budget.Amount)
	return &models.BudgetSummary{
		Budget:        budget,
		CategoryLabel: budget.CategoryName(),
		Spent:         spent,
		Remaining:     budget.Amount.Sub(spent),
		Percentage:    exact.Round(2),
		ProgressColor: ProgressColorFor(exact),
	}
}

// ComputePercentage returns spent as a percentage of amount rounded to two
// places. A zero amount yields zero.
func ComputePercentage(spent, amount decimal.Decimal) decimal.Decimal {
	return exactPercentage(spent, amount).Round(2)
}

func exactPercentage(spent, amount decimal.Decimal) decimal.Decimal {
	if amount.IsZero() {
		return decimal.Zero
	}
	return spent.Div(amount).Mul(hundred)
}

// ProgressColorFor bands a percentage: below 70 ok, below 90 warning, else critical.
func ProgressColorFor(percentage decimal.Decimal) models.ProgressColor {
	switch {
	case percentage.LessThan(decimal.NewFromInt(70)):
		return models.ProgressColorOK
	case percentage.LessThan(decimal.NewFromInt(90)):
		return models.ProgressColorWarning
	default:
		return models.ProgressColorCritical
	}
}
