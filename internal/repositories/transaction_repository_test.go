package repositories

import (
	"context"
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	ctx      context.Context
	user     *models.User
	rent     *models.Category
	dining   *models.Category
	october  models.DateRange
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.db, "ledger@example.com")
	s.rent = database.CreateTestCategory(s.T(), s.db, "rent", nil)
	s.dining = database.CreateTestCategory(s.T(), s.db, "dining", nil)
	s.october = models.DateRange{
		Start: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC).Add(-time.Microsecond),
	}
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) create(category *models.Category, txType string, amount string, date time.Time) *models.Transaction {
	tx := &models.Transaction{
		UserID:          s.user.ID,
		Amount:          decimal.RequireFromString(amount),
		Type:            txType,
		TransactionDate: date,
	}
	if category != nil {
		id := category.ID
		tx.CategoryID = &id
	}
	s.Require().NoError(s.repo.Create(s.ctx, tx))
	return tx
}

func (s *TransactionRepositorySuite) TestTransactionRepository_CreateAndGet() {
	tx := s.create(s.rent, "Expenses", "950.50", time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC))

	found, err := s.repo.GetByID(s.ctx, tx.ID)
	s.Require().NoError(err)
	s.Equal(models.TransactionTypeExpenses, found.Type)
	s.True(found.Amount.Equal(decimal.RequireFromString("950.50")))
	s.Require().NotNil(found.Category)
	s.Equal("rent", found.Category.Name)
	s.Empty(found.Attachments)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_CreateRejectsUnknownType() {
	tx := &models.Transaction{UserID: s.user.ID, Amount: decimal.NewFromInt(1), Type: "gift", TransactionDate: time.Now()}

	s.ErrorIs(s.repo.Create(s.ctx, tx), models.ErrInvalidTransactionType)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_ListPaginates() {
	for i := 0; i < 25; i++ {
		s.create(nil, models.TransactionTypeExpenses, "10", time.Date(2026, 10, 1+i, 0, 0, 0, 0, time.UTC))
	}

	filters := models.TransactionFilters{UserID: s.user.ID, Page: 1}
	filters.Normalize()
	first, total, err := s.repo.List(s.ctx, filters)
	s.Require().NoError(err)
	s.Equal(int64(25), total)
	s.Len(first, 10)

	filters.Page = 3
	last, total, err := s.repo.List(s.ctx, filters)
	s.Require().NoError(err)
	s.Equal(int64(25), total)
	s.Len(last, 5)

	page := models.NewTransactionPage(last, total, filters.Page, filters.PerPage)
	s.Equal(3, page.LastPage)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_ListFilters() {
	s.create(nil, models.TransactionTypeIncome, "500", time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))
	s.create(nil, models.TransactionTypeIncome, "600", time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC))
	s.create(s.rent, models.TransactionTypeExpenses, "900", time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC))

	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	s.Require().NoError(s.repo.Create(s.ctx, &models.Transaction{
		UserID: other.ID, Amount: decimal.NewFromInt(1), Type: models.TransactionTypeIncome,
		TransactionDate: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
	}))

	start := s.october.Start
	filters := models.TransactionFilters{UserID: s.user.ID, Type: models.TransactionTypeIncome, StartDate: &start}
	filters.Normalize()

	transactions, total, err := s.repo.List(s.ctx, filters)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(transactions, 1)
	s.True(transactions[0].Amount.Equal(decimal.NewFromInt(600)))
}

func (s *TransactionRepositorySuite) TestTransactionRepository_SumAmountInclusiveBounds() {
	s.create(s.rent, models.TransactionTypeExpenses, "100", s.october.Start)
	s.create(s.rent, models.TransactionTypeExpenses, "200.25", time.Date(2026, 10, 31, 23, 59, 59, 0, time.UTC))
	s.create(s.rent, models.TransactionTypeExpenses, "400", time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC))
	s.create(s.rent, models.TransactionTypeExpenses, "800", time.Date(2026, 9, 30, 23, 0, 0, 0, time.UTC))
	s.create(s.dining, models.TransactionTypeExpenses, "50", time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC))

	total, err := s.repo.SumAmount(s.ctx, s.user.ID, []uuid.UUID{s.rent.ID}, s.october)
	s.Require().NoError(err)
	s.True(total.Equal(decimal.RequireFromString("300.25")), total.String())

	total, err = s.repo.SumAmount(s.ctx, s.user.ID, []uuid.UUID{s.rent.ID, s.dining.ID}, s.october)
	s.Require().NoError(err)
	s.True(total.Equal(decimal.RequireFromString("350.25")), total.String())
}

func (s *TransactionRepositorySuite) TestTransactionRepository_SumAmountEmptyCategories() {
	s.create(s.rent, models.TransactionTypeExpenses, "100", s.october.Start)

	total, err := s.repo.SumAmount(s.ctx, s.user.ID, nil, s.october)
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *TransactionRepositorySuite) TestTransactionRepository_SumByTypeAndTotals() {
	s.create(nil, models.TransactionTypeIncome, "1000", time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC))
	s.create(s.rent, models.TransactionTypeExpenses, "300", time.Date(2026, 10, 6, 0, 0, 0, 0, time.UTC))
	s.create(s.dining, models.TransactionTypeExpenses, "45", time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC))

	expenses, err := s.repo.SumByType(s.ctx, s.user.ID, models.TransactionTypeExpenses, s.october)
	s.Require().NoError(err)
	s.True(expenses.Equal(decimal.NewFromInt(300)))

	savings, err := s.repo.SumByType(s.ctx, s.user.ID, models.TransactionTypeSavings, s.october)
	s.Require().NoError(err)
	s.True(savings.IsZero())

	totals, err := s.repo.GetTotalsByType(s.ctx, s.user.ID)
	s.Require().NoError(err)
	byType := map[string]decimal.Decimal{}
	for _, total := range totals {
		byType[total.Type] = total.TotalAmount
	}
	s.True(byType[models.TransactionTypeIncome].Equal(decimal.NewFromInt(1000)))
	s.True(byType[models.TransactionTypeExpenses].Equal(decimal.NewFromInt(345)))
	s.NotContains(byType, models.TransactionTypeSavings)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_RecentAndDelete() {
	for i := 0; i < 7; i++ {
		s.create(nil, models.TransactionTypeExpenses, "1", time.Date(2026, 10, 1+i, 0, 0, 0, 0, time.UTC))
	}

	recent, err := s.repo.GetRecentByUserID(s.ctx, s.user.ID, 5)
	s.Require().NoError(err)
	s.Len(recent, 5)

	s.NoError(s.repo.Delete(s.ctx, recent[0].ID))
	_, err = s.repo.GetByID(s.ctx, recent[0].ID)
	s.ErrorIs(err, ErrTransactionNotFound)
	s.ErrorIs(s.repo.Delete(s.ctx, recent[0].ID), ErrTransactionNotFound)
}
