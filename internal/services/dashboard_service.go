package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	ChartMonths              = 6
	RecentTransactionsLimit  = 5
	chartQueryConcurrency    = 4
	chartSeriesExpensesColor = "var(--chart-1)"
	chartSeriesIncomeColor   = "var(--chart-2)"
)

type dashboardService struct {
	transactionRepo  repositories.TransactionRepositoryInterface
	notificationRepo repositories.NotificationRepositoryInterface
	clock            Clock
	logger           *slog.Logger
}

func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	notificationRepo repositories.NotificationRepositoryInterface,
	clock Clock,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &dashboardService{
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		clock:            clock,
		logger:           logger,
	}
}

// ChartData totals income and expenses for the last six calendar months,
// oldest first, the current month included.
func (s *dashboardService) ChartData(ctx context.Context, userID uuid.UUID) (*models.ChartData, error) {
	now := s.clock.Now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]models.MonthlyChartPoint, ChartMonths)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(chartQueryConcurrency)

	for i := 0; i < ChartMonths; i++ {
		monthStart := currentMonth.AddDate(0, i-(ChartMonths-1), 0)
		window := models.DateRange{Start: monthStart, End: monthStart.AddDate(0, 1, 0).Add(-time.Microsecond)}
		points[i] = models.MonthlyChartPoint{
			Month:    monthStart.Format("Jan"),
			Year:     monthStart.Year(),
			Expenses: decimal.Zero,
			Income:   decimal.Zero,
		}

		point := &points[i]
		g.Go(func() error {
			expenses, err := s.transactionRepo.SumByType(gctx, userID, models.TransactionTypeExpenses, window)
			if err != nil {
				return err
			}
			point.Expenses = expenses
			return nil
		})
		g.Go(func() error {
			income, err := s.transactionRepo.SumByType(gctx, userID, models.TransactionTypeIncome, window)
			if err != nil {
				return err
			}
			point.Income = income
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build chart data: %w", err)
	}

	return &models.ChartData{
		ChartData: points,
		ChartConfig: map[string]models.ChartSeriesConfig{
			models.TransactionTypeExpenses: {Label: "Expenses", Color: chartSeriesExpensesColor},
			models.TransactionTypeIncome:   {Label: "Income", Color: chartSeriesIncomeColor},
		},
	}, nil
}

// Analysis returns lifetime totals per type and the unread notification count.
func (s *dashboardService) Analysis(ctx context.Context, userID uuid.UUID) (*models.DashboardAnalysis, error) {
	totals, err := s.transactionRepo.GetTotalsByType(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get totals: %w", err)
	}

	analysis := &models.DashboardAnalysis{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalSavings:  decimal.Zero,
	}
	for _, total := range totals {
		switch total.Type {
		case models.TransactionTypeIncome:
			analysis.TotalIncome = total.TotalAmount
		case models.TransactionTypeExpenses:
			analysis.TotalExpenses = total.TotalAmount
		case models.TransactionTypeSavings:
			analysis.TotalSavings = total.TotalAmount
		}
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	analysis.UnreadNotifications = unread

	return analysis, nil
}

func (s *dashboardService) RecentTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetRecentByUserID(ctx, userID, RecentTransactionsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}
