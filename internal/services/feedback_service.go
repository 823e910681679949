package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

type feedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	attachments  AttachmentStoreInterface
	metrics      MetricsRecorderInterface
	events       EventLoggerInterface
	logger       *slog.Logger
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	attachments AttachmentStoreInterface,
	metrics MetricsRecorderInterface,
	events EventLoggerInterface,
	logger *slog.Logger,
) FeedbackServiceInterface {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		attachments:  attachments,
		metrics:      metrics,
		events:       events,
		logger:       logger,
	}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, userID uuid.UUID, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	verr := NewValidationError()

	feedbackType := strings.ToLower(strings.TrimSpace(req.Type))
	if !models.IsValidFeedbackType(feedbackType) {
		verr.Add("type", "The selected type is invalid.")
	}

	title := strings.TrimSpace(req.Title)
	switch {
	case title == "":
		verr.Add("title", "The title field is required.")
	case utf8.RuneCountInString(title) > models.MaxFeedbackTitleLength:
		verr.Add("title", "The title must not be greater than 255 characters.")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		verr.Add("description", "The description field is required.")
	}

	if verr.HasErrors() {
		return nil, verr
	}

	paths, err := storeAttachments(ctx, s.attachments, FeedbackAttachmentsFolder, req.Attachments, s.logger)
	if err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		UserID:      userID,
		Type:        feedbackType,
		Title:       title,
		Description: description,
		Attachments: paths,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		removeAttachments(ctx, s.attachments, paths, s.logger)
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	s.metrics.IncrementCounter(MetricFeedbackSubmitted, map[string]string{"type": feedbackType})
	s.events.LogFeedbackSubmitted(ctx, feedback.ID, userID, feedbackType)
	return feedback, nil
}

func (s *feedbackService) ListFeedback(ctx context.Context, userID uuid.UUID) ([]models.Feedback, error) {
	feedback, err := s.feedbackRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}
