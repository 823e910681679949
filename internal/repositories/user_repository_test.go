package repositories

import (
	"context"
	"testing"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
	ctx  context.Context
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestUserRepository_UpsertCreates() {
	user := &models.User{Email: "ada@example.com", FirstName: "Ada", LastName: "Obi"}

	err := s.repo.Upsert(s.ctx, user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
}

func (s *UserRepositorySuite) TestUserRepository_UpsertRefreshesExisting() {
	existing := database.CreateTestUser(s.T(), s.db, "ada@example.com")

	user := &models.User{Email: "ADA@example.com ", FirstName: "Adaeze", LastName: "Obi"}
	err := s.repo.Upsert(s.ctx, user)
	s.Require().NoError(err)
	s.Equal(existing.ID, user.ID)

	found, err := s.repo.GetByID(s.ctx, existing.ID)
	s.Require().NoError(err)
	s.Equal("Adaeze", found.FirstName)
}

func (s *UserRepositorySuite) TestUserRepository_GetByEmail() {
	user := database.CreateTestUser(s.T(), s.db, "test@example.com")

	found, err := s.repo.GetByEmail(s.ctx, " Test@Example.com")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail(s.ctx, "nonexistent@example.com")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUserRepository_GetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}
