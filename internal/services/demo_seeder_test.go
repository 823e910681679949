package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"
	"finance-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DemoSeederSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	userRepo        *repository_mocks.MockUserRepositoryInterface
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	budgetRepo      *repository_mocks.MockBudgetRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	generator       *service_mocks.MockLedgerGeneratorInterface
	seeder          DemoSeederInterface
	ctx             context.Context
	now             time.Time
	user            *models.User
}

func (s *DemoSeederSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.generator = service_mocks.NewMockLedgerGeneratorInterface(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	s.user = &models.User{ID: uuid.New(), Email: gofakeit.Email(), FirstName: gofakeit.FirstName()}

	s.seeder = NewDemoSeeder(
		s.userRepo,
		s.categoryRepo,
		s.budgetRepo,
		s.transactionRepo,
		s.generator,
		ClockFunc(func() time.Time { return s.now }),
		slog.Default(),
	)
}

func (s *DemoSeederSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDemoSeederSuite(t *testing.T) {
	suite.Run(t, new(DemoSeederSuite))
}

func (s *DemoSeederSuite) TestSeed_CreatesMissingCategoriesBudgetsAndLedger() {
	s.userRepo.EXPECT().Upsert(s.ctx, s.user).Return(nil)

	rentID := uuid.New()
	for _, demo := range DemoCategories {
		if demo.Name == "rent" {
			s.categoryRepo.EXPECT().GetByName(s.ctx, "rent").Return(&models.Category{ID: rentID, Name: "rent"}, nil)
			continue
		}
		s.categoryRepo.EXPECT().GetByName(s.ctx, demo.Name).Return(nil, repositories.ErrCategoryNotFound)
	}
	s.categoryRepo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Category) error {
			c.ID = uuid.New()
			return nil
		}).Times(len(DemoCategories) - 1)

	s.budgetRepo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, b *models.Budget) error {
			s.Equal(s.user.ID, b.UserID)
			s.Equal(models.BudgetPeriodMonthly, b.Period)
			s.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), b.StartDate)
			s.True(b.AutoReset)
			if b.Amount.Equal(decimal.NewFromInt(120000)) {
				s.Equal(rentID, b.CategoryID)
			}
			return nil
		}).Times(len(demoBudgets))

	ledger := []*models.Transaction{{UserID: s.user.ID}, {UserID: s.user.ID}}
	s.generator.EXPECT().GenerateLedger(s.user.ID, gomock.Any(), time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), s.now).
		DoAndReturn(func(_ uuid.UUID, ids map[string]uuid.UUID, _, _ time.Time) []*models.Transaction {
			s.Len(ids, len(DemoCategories))
			s.Equal(rentID, ids["rent"])
			return ledger
		})
	s.transactionRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil).Times(len(ledger))

	report, err := s.seeder.Seed(s.ctx, s.user, 3)

	s.Require().NoError(err)
	s.Equal(s.user.ID, report.UserID)
	s.Equal(len(DemoCategories)-1, report.Categories)
	s.Equal(len(demoBudgets), report.Budgets)
	s.Equal(2, report.Transactions)
}

func (s *DemoSeederSuite) TestSeed_StopsOnCategoryLookupError() {
	s.userRepo.EXPECT().Upsert(s.ctx, s.user).Return(nil)
	s.categoryRepo.EXPECT().GetByName(s.ctx, DemoCategories[0].Name).Return(nil, errors.New("connection reset"))

	_, err := s.seeder.Seed(s.ctx, s.user, 1)

	s.Error(err)
	s.Contains(err.Error(), "failed to look up category")
}

func (s *DemoSeederSuite) TestSeed_UserUpsertFailure() {
	s.userRepo.EXPECT().Upsert(s.ctx, s.user).Return(errors.New("duplicate email"))

	_, err := s.seeder.Seed(s.ctx, s.user, 1)

	s.Error(err)
}
