package handlers

import (
	"context"
	"net/http"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type FeedbackHandlerSuite struct {
	handlerSuite
	service *service_mocks.MockFeedbackServiceInterface
	handler *FeedbackHandler
}

func (s *FeedbackHandlerSuite) SetupTest() {
	s.initHandlerSuite()
	s.service = service_mocks.NewMockFeedbackServiceInterface(s.ctrl)
	s.handler = NewFeedbackHandler(s.service)
}

func (s *FeedbackHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeedbackHandlerSuite(t *testing.T) {
	suite.Run(t, new(FeedbackHandlerSuite))
}

func (s *FeedbackHandlerSuite) TestSubmitFeedback_Multipart() {
	s.service.EXPECT().SubmitFeedback(gomock.Any(), s.userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
			s.Equal("bug", req.Type)
			s.Equal("Chart is empty", req.Title)
			s.Len(req.Attachments, 2)
			return &models.Feedback{ID: uuid.New(), Type: req.Type, Title: req.Title}, nil
		})

	c, rec := s.newMultipartContext("/api/v1/feedback/submit-feedback",
		map[string]string{"type": "bug", "title": "Chart is empty", "description": "No bars after adding income"},
		map[string]string{"screen-1.png": "png", "screen-2.png": "png"})

	s.NoError(s.handler.SubmitFeedback(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("Feedback submitted successfully", s.decode(rec).Message)
}

func (s *FeedbackHandlerSuite) TestSubmitFeedback_Invalid() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/feedback/submit-feedback", map[string]string{"type": "praise"})

	s.NoError(s.handler.SubmitFeedback(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	errs := string(s.decode(rec).Body["errors"])
	s.Contains(errs, "type")
	s.Contains(errs, "title")
	s.Contains(errs, "description")
}

func (s *FeedbackHandlerSuite) TestFetchFeedback() {
	s.service.EXPECT().ListFeedback(gomock.Any(), s.userID).Return([]models.Feedback{{ID: uuid.New(), Title: "More charts"}}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/feedback/fetch-feedback", nil)

	s.NoError(s.handler.FetchFeedback(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(string(s.decode(rec).Body["feedback"]), "More charts")
}
