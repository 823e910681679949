package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	events       *service_mocks.MockEventLoggerInterface
	service      CategoryServiceInterface
	ctx          context.Context
}

func (s *CategoryServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.events = service_mocks.NewMockEventLoggerInterface(s.ctrl)
	s.service = NewCategoryService(s.categoryRepo, s.events, slog.Default())
	s.ctx = context.Background()
}

func (s *CategoryServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}

func (s *CategoryServiceSuite) TestCreateCategory_Normalizes() {
	s.categoryRepo.EXPECT().ExistsByName(s.ctx, "groceries").Return(false, nil)
	s.categoryRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.events.EXPECT().LogCategoryCreated(s.ctx, gomock.Any(), "groceries")

	category, err := s.service.CreateCategory(s.ctx, &dto.CreateCategoryRequest{Category: "  Groceries ", Type: "Expenses"})

	s.Require().NoError(err)
	s.Equal("groceries", category.Name)
	s.Equal(models.TransactionTypeExpenses, category.TypeOrEmpty())
}

func (s *CategoryServiceSuite) TestCreateCategory_DuplicateIsCaseInsensitive() {
	s.categoryRepo.EXPECT().ExistsByName(s.ctx, "food").Return(true, nil)

	_, err := s.service.CreateCategory(s.ctx, &dto.CreateCategoryRequest{Category: "FOOD"})

	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Contains(verr.Fields, "category")
}

func (s *CategoryServiceSuite) TestCreateCategory_RaceOnUniqueIndex() {
	s.categoryRepo.EXPECT().ExistsByName(s.ctx, "food").Return(false, nil)
	s.categoryRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(repositories.ErrCategoryAlreadyExists)

	_, err := s.service.CreateCategory(s.ctx, &dto.CreateCategoryRequest{Category: "food"})

	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Contains(verr.Fields, "category")
}

func (s *CategoryServiceSuite) TestCreateCategory_Invalid() {
	_, err := s.service.CreateCategory(s.ctx, &dto.CreateCategoryRequest{Category: "   ", Type: "gift"})

	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Contains(verr.Fields, "category")
	s.Contains(verr.Fields, "type")
}

func (s *CategoryServiceSuite) TestCreateCategory_LengthCountsCharacters() {
	atLimit := strings.Repeat("é", models.MaxCategoryNameLength)
	s.categoryRepo.EXPECT().ExistsByName(s.ctx, atLimit).Return(false, nil)
	s.categoryRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.events.EXPECT().LogCategoryCreated(s.ctx, gomock.Any(), atLimit)

	category, err := s.service.CreateCategory(s.ctx, &dto.CreateCategoryRequest{Category: atLimit})

	s.Require().NoError(err)
	s.Equal(atLimit, category.Name)

	_, err = s.service.CreateCategory(s.ctx, &dto.CreateCategoryRequest{Category: atLimit + "é"})

	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Contains(verr.Fields, "category")
}

func (s *CategoryServiceSuite) TestDeleteCategory_Unreferenced() {
	id := uuid.New()
	s.categoryRepo.EXPECT().GetByID(s.ctx, id).Return(&models.Category{ID: id, Name: "misc"}, nil)
	s.categoryRepo.EXPECT().CountReferences(s.ctx, id).Return(int64(0), nil)
	s.categoryRepo.EXPECT().Delete(s.ctx, id).Return(nil)
	s.events.EXPECT().LogCategoryDeleted(s.ctx, id, "misc")

	s.NoError(s.service.DeleteCategory(s.ctx, id))
}

func (s *CategoryServiceSuite) TestDeleteCategory_InUse() {
	id := uuid.New()
	s.categoryRepo.EXPECT().GetByID(s.ctx, id).Return(&models.Category{ID: id, Name: "rent"}, nil)
	s.categoryRepo.EXPECT().CountReferences(s.ctx, id).Return(int64(2), nil)

	s.ErrorIs(s.service.DeleteCategory(s.ctx, id), ErrCategoryInUse)
}

func (s *CategoryServiceSuite) TestDeleteCategory_Missing() {
	id := uuid.New()
	s.categoryRepo.EXPECT().GetByID(s.ctx, id).Return(nil, repositories.ErrCategoryNotFound)

	s.ErrorIs(s.service.DeleteCategory(s.ctx, id), ErrCategoryNotFound)
}

func (s *CategoryServiceSuite) TestListCategories() {
	s.categoryRepo.EXPECT().List(s.ctx).Return([]models.Category{{Name: "food"}, {Name: "rent"}}, nil)

	categories, err := s.service.ListCategories(s.ctx)

	s.NoError(err)
	s.Len(categories, 2)
}
