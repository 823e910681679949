package repositories

import (
	"context"
	"testing"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
)

func TestFeedbackRepository(t *testing.T) {
	suite.Run(t, new(FeedbackRepositorySuite))
}

type FeedbackRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo FeedbackRepositoryInterface
	ctx  context.Context
}

func (s *FeedbackRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewFeedbackRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *FeedbackRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *FeedbackRepositorySuite) TestFeedbackRepository_CreateAndList() {
	user := database.CreateTestUser(s.T(), s.db, gofakeit.Email())
	other := database.CreateTestUser(s.T(), s.db, gofakeit.Email())

	feedback := &models.Feedback{
		UserID:      user.ID,
		Type:        models.FeedbackTypeImprovement,
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		Attachments: models.StringList{"feedback/screen.png"},
	}
	s.Require().NoError(s.repo.Create(s.ctx, feedback))
	s.Require().NoError(s.repo.Create(s.ctx, &models.Feedback{
		UserID: other.ID, Type: models.FeedbackTypeBug, Title: "crash", Description: "on load",
	}))

	listed, err := s.repo.GetByUserID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal(feedback.Title, listed[0].Title)
	s.Equal(models.StringList{"feedback/screen.png"}, listed[0].Attachments)
}
