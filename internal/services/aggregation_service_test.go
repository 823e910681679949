package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AggregationServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	budgetRepo      *repository_mocks.MockBudgetRepositoryInterface
	service         AggregationServiceInterface
	ctx             context.Context
	userID          uuid.UUID
	rent            *models.Category
}

func (s *AggregationServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.service = NewAggregationService(s.transactionRepo, s.budgetRepo, slog.Default())
	s.ctx = context.Background()
	s.userID = uuid.New()

	expenses := models.TransactionTypeExpenses
	s.rent = &models.Category{ID: uuid.New(), Name: "rent", Type: &expenses}
}

func (s *AggregationServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAggregationServiceSuite(t *testing.T) {
	suite.Run(t, new(AggregationServiceSuite))
}

func (s *AggregationServiceSuite) budget(amount string, start, end time.Time) *models.Budget {
	return &models.Budget{
		ID:         uuid.New(),
		UserID:     s.userID,
		CategoryID: s.rent.ID,
		Category:   s.rent,
		Amount:     decimal.RequireFromString(amount),
		Period:     models.BudgetPeriodMonthly,
		StartDate:  start,
		EndDate:    end,
	}
}

func (s *AggregationServiceSuite) TestSummarizeBudget_AlmostSpent() {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 31, 23, 59, 59, 999999000, time.UTC)
	budget := s.budget("1000", start, end)

	s.transactionRepo.EXPECT().
		SumAmount(s.ctx, s.userID, []uuid.UUID{s.rent.ID}, models.DateRange{Start: start, End: end}).
		Return(decimal.NewFromInt(950), nil)

	summary, err := s.service.SummarizeBudget(s.ctx, budget)

	s.Require().NoError(err)
	s.True(summary.Spent.Equal(decimal.NewFromInt(950)))
	s.True(summary.Remaining.Equal(decimal.NewFromInt(50)))
	s.True(summary.Percentage.Equal(decimal.NewFromInt(95)))
	s.Equal(models.ProgressColorCritical, summary.ProgressColor)
	s.Equal("rent", summary.CategoryLabel)
	s.Equal(budget.ID, summary.ID)
}

func (s *AggregationServiceSuite) TestSummarizeBudget_Overspent() {
	budget := s.budget("500", time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 1))

	s.transactionRepo.EXPECT().
		SumAmount(s.ctx, s.userID, []uuid.UUID{s.rent.ID}, budget.Window()).
		Return(decimal.NewFromInt(600), nil)

	summary, err := s.service.SummarizeBudget(s.ctx, budget)

	s.Require().NoError(err)
	s.True(summary.Remaining.Equal(decimal.NewFromInt(-100)), summary.Remaining.String())
	s.True(summary.Percentage.Equal(decimal.NewFromInt(120)))
	s.Equal(models.ProgressColorCritical, summary.ProgressColor)
}

func (s *AggregationServiceSuite) TestSummarizeBudget_RepositoryError() {
	budget := s.budget("500", time.Now(), time.Now())
	s.transactionRepo.EXPECT().SumAmount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(decimal.Zero, errors.New("connection reset"))

	summary, err := s.service.SummarizeBudget(s.ctx, budget)

	s.Error(err)
	s.Nil(summary)
	s.Contains(err.Error(), "connection reset")
}

func (s *AggregationServiceSuite) TestSummarizeBudget_SameDataSameResult() {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 31, 23, 59, 59, 999999000, time.UTC)
	budget := s.budget("1000", start, end)
	budget.Purpose = models.PurposeExpenses

	s.transactionRepo.EXPECT().SumAmount(s.ctx, s.userID, []uuid.UUID{s.rent.ID}, budget.Window()).
		Return(decimal.RequireFromString("412.37"), nil).Times(4)
	s.budgetRepo.EXPECT().GetByPurpose(s.ctx, s.userID, models.PurposeExpenses).
		Return([]models.Budget{*budget}, nil).Times(2)

	first, err := s.service.SummarizeBudget(s.ctx, budget)
	s.Require().NoError(err)
	second, err := s.service.SummarizeBudget(s.ctx, budget)
	s.Require().NoError(err)

	s.True(first.Spent.Equal(second.Spent))
	s.True(first.Remaining.Equal(second.Remaining))
	s.True(first.Percentage.Equal(second.Percentage))
	s.Equal(first.ProgressColor, second.ProgressColor)
	s.Equal(*budget, second.Budget, "summarizing must not mutate the budget")

	firstPurpose, err := s.service.SummarizePurpose(s.ctx, s.userID, models.PurposeExpenses)
	s.Require().NoError(err)
	secondPurpose, err := s.service.SummarizePurpose(s.ctx, s.userID, models.PurposeExpenses)
	s.Require().NoError(err)

	s.Equal(firstPurpose.BudgetCount, secondPurpose.BudgetCount)
	s.Equal(firstPurpose.CategoryIDs, secondPurpose.CategoryIDs)
	s.True(firstPurpose.TotalAmount.Equal(secondPurpose.TotalAmount))
	s.True(firstPurpose.SpentOrSaved.Equal(secondPurpose.SpentOrSaved))
	s.True(firstPurpose.TotalSpent.Equal(*secondPurpose.TotalSpent))
	s.True(firstPurpose.RemainingBudget.Equal(*secondPurpose.RemainingBudget))
	s.Equal(*firstPurpose.StartDate, *secondPurpose.StartDate)
	s.Equal(*firstPurpose.EndDate, *secondPurpose.EndDate)
}

func (s *AggregationServiceSuite) TestSummarizePurpose_NoBudgets() {
	s.budgetRepo.EXPECT().GetByPurpose(s.ctx, s.userID, models.PurposeSavings).Return([]models.Budget{}, nil)

	summary, err := s.service.SummarizePurpose(s.ctx, s.userID, models.PurposeSavings)

	s.Require().NoError(err)
	s.Equal(0, summary.BudgetCount)
	s.Empty(summary.CategoryIDs)
	s.True(summary.TotalAmount.IsZero())
	s.True(summary.SpentOrSaved.IsZero())
	s.Require().NotNil(summary.TotalSaved)
	s.True(summary.TotalSaved.IsZero())
	s.True(summary.ExtraSaved.IsZero())
	s.Nil(summary.TotalSpent)
	s.Nil(summary.StartDate)
}

func (s *AggregationServiceSuite) TestSummarizePurpose_SavingsSpansAllWindows() {
	vacation := uuid.New()
	first := s.budget("600", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))
	second := s.budget("400", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	third := s.budget("0", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))
	third.CategoryID = vacation

	s.budgetRepo.EXPECT().GetByPurpose(s.ctx, s.userID, models.PurposeSavings).
		Return([]models.Budget{*first, *second, *third}, nil)
	s.transactionRepo.EXPECT().
		SumAmount(s.ctx, s.userID, []uuid.UUID{s.rent.ID, vacation}, models.DateRange{Start: first.StartDate, End: second.EndDate}).
		Return(decimal.NewFromInt(1250), nil)

	summary, err := s.service.SummarizePurpose(s.ctx, s.userID, models.PurposeSavings)

	s.Require().NoError(err)
	s.Equal(3, summary.BudgetCount)
	s.True(summary.TotalAmount.Equal(decimal.NewFromInt(1000)))
	s.Equal(first.StartDate, *summary.StartDate)
	s.Equal(second.EndDate, *summary.EndDate)
	s.True(summary.TotalSaved.Equal(decimal.NewFromInt(1250)))
	s.True(summary.ExtraSaved.Equal(decimal.NewFromInt(250)))
	s.Nil(summary.RemainingBudget)
}

func (s *AggregationServiceSuite) TestSummarizePurpose_ExpensesRemaining() {
	budget := s.budget("800", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC))
	budget.Purpose = "Emergency"

	s.budgetRepo.EXPECT().GetByPurpose(s.ctx, s.userID, models.Purpose("Emergency")).Return([]models.Budget{*budget}, nil)
	s.transactionRepo.EXPECT().SumAmount(s.ctx, s.userID, []uuid.UUID{s.rent.ID}, budget.Window()).
		Return(decimal.NewFromInt(300), nil)

	summary, err := s.service.SummarizePurpose(s.ctx, s.userID, "Emergency")

	s.Require().NoError(err)
	s.True(summary.TotalSpent.Equal(decimal.NewFromInt(300)))
	s.True(summary.RemainingBudget.Equal(decimal.NewFromInt(500)))
	s.Nil(summary.TotalSaved)
}

func (s *AggregationServiceSuite) TestSummarizePurpose_SavingsBelowTarget() {
	budget := s.budget("1000", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC))
	budget.Purpose = models.PurposeSavings

	s.budgetRepo.EXPECT().GetByPurpose(s.ctx, s.userID, models.PurposeSavings).Return([]models.Budget{*budget}, nil)
	s.transactionRepo.EXPECT().SumAmount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(decimal.NewFromInt(400), nil)

	summary, err := s.service.SummarizePurpose(s.ctx, s.userID, models.PurposeSavings)

	s.Require().NoError(err)
	s.True(summary.ExtraSaved.IsZero())
}

func TestComputePercentage(t *testing.T) {
	tests := []struct {
		name   string
		spent  string
		amount string
		want   string
	}{
		{"zero amount", "50", "0", "0"},
		{"nothing spent", "0", "1000", "0"},
		{"exact", "950", "1000", "95"},
		{"rounded", "1", "3", "33.33"},
		{"over", "600", "500", "120"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePercentage(decimal.RequireFromString(tt.spent), decimal.RequireFromString(tt.amount))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestBuildBudgetSummary_BandsOnExactRatio(t *testing.T) {
	tests := []struct {
		spent          string
		wantPercentage string
		wantColor      models.ProgressColor
	}{
		{"699.96", "70", models.ProgressColorOK},
		{"700", "70", models.ProgressColorWarning},
		{"899.96", "90", models.ProgressColorWarning},
		{"900", "90", models.ProgressColorCritical},
	}

	for _, tt := range tests {
		t.Run(tt.spent, func(t *testing.T) {
			budget := models.Budget{Amount: decimal.NewFromInt(1000)}

			summary := BuildBudgetSummary(budget, decimal.RequireFromString(tt.spent))

			assert.True(t, summary.Percentage.Equal(decimal.RequireFromString(tt.wantPercentage)), "got %s", summary.Percentage)
			assert.Equal(t, tt.wantColor, summary.ProgressColor)
		})
	}
}

func TestProgressColorFor(t *testing.T) {
	tests := []struct {
		percentage string
		want       models.ProgressColor
	}{
		{"0", models.ProgressColorOK},
		{"69.99", models.ProgressColorOK},
		{"70", models.ProgressColorWarning},
		{"89.99", models.ProgressColorWarning},
		{"90", models.ProgressColorCritical},
		{"150", models.ProgressColorCritical},
	}

	for _, tt := range tests {
		t.Run(tt.percentage, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressColorFor(decimal.RequireFromString(tt.percentage)))
		})
	}
}
