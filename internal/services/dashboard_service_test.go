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
	"github.com/stretchr/testify/suite"
)

type DashboardServiceSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	transactionRepo  *repository_mocks.MockTransactionRepositoryInterface
	notificationRepo *repository_mocks.MockNotificationRepositoryInterface
	service          DashboardServiceInterface
	ctx              context.Context
	userID           uuid.UUID
}

func (s *DashboardServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.notificationRepo = repository_mocks.NewMockNotificationRepositoryInterface(s.ctrl)
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	s.service = NewDashboardService(s.transactionRepo, s.notificationRepo, ClockFunc(func() time.Time { return now }), slog.Default())
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *DashboardServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) TestChartData_SixMonthsEndingThisMonth() {
	s.transactionRepo.EXPECT().SumByType(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).Times(12).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, transactionType string, window models.DateRange) (decimal.Decimal, error) {
			s.Equal(1, window.Start.Day())
			s.Equal(window.Start.AddDate(0, 1, 0).Add(-time.Microsecond), window.End)
			month := decimal.NewFromInt(int64(window.Start.Month()))
			if transactionType == models.TransactionTypeIncome {
				return month.Mul(decimal.NewFromInt(100)), nil
			}
			return month, nil
		})

	chart, err := s.service.ChartData(s.ctx, s.userID)

	s.Require().NoError(err)
	s.Require().Len(chart.ChartData, ChartMonths)
	s.Equal("May", chart.ChartData[0].Month)
	s.Equal(2026, chart.ChartData[0].Year)
	s.Equal("Oct", chart.ChartData[5].Month)
	s.True(chart.ChartData[5].Expenses.Equal(decimal.NewFromInt(10)))
	s.True(chart.ChartData[5].Income.Equal(decimal.NewFromInt(1000)))
	s.Equal("var(--chart-1)", chart.ChartConfig["expenses"].Color)
	s.Equal("Income", chart.ChartConfig["income"].Label)
}

func (s *DashboardServiceSuite) TestChartData_RepositoryError() {
	s.transactionRepo.EXPECT().SumByType(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
		Return(decimal.Zero, errors.New("db down")).MinTimes(1).MaxTimes(12)

	_, err := s.service.ChartData(s.ctx, s.userID)

	s.Error(err)
}

func (s *DashboardServiceSuite) TestAnalysis() {
	s.transactionRepo.EXPECT().GetTotalsByType(s.ctx, s.userID).Return([]models.TypeTotal{
		{Type: models.TransactionTypeIncome, TotalAmount: decimal.NewFromInt(5000)},
		{Type: models.TransactionTypeExpenses, TotalAmount: decimal.NewFromInt(3200)},
	}, nil)
	s.notificationRepo.EXPECT().CountUnread(s.ctx, s.userID).Return(int64(2), nil)

	analysis, err := s.service.Analysis(s.ctx, s.userID)

	s.Require().NoError(err)
	s.True(analysis.TotalIncome.Equal(decimal.NewFromInt(5000)))
	s.True(analysis.TotalExpenses.Equal(decimal.NewFromInt(3200)))
	s.True(analysis.TotalSavings.IsZero())
	s.Equal(int64(2), analysis.UnreadNotifications)
}

func (s *DashboardServiceSuite) TestRecentTransactions_EmptyIsNotNil() {
	s.transactionRepo.EXPECT().GetRecentByUserID(s.ctx, s.userID, RecentTransactionsLimit).Return(nil, nil)

	transactions, err := s.service.RecentTransactions(s.ctx, s.userID)

	s.NoError(err)
	s.NotNil(transactions)
	s.Empty(transactions)
}
