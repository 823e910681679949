package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	events       EventLoggerInterface
	logger       *slog.Logger
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	events EventLoggerInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		events:       events,
		logger:       logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory stores a new category. Names are compared lowercase so
// "Food" and "food" collide.
func (s *categoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	verr := NewValidationError()

	name := models.NormalizeCategoryName(req.Category)
	switch {
	case name == "":
		verr.Add("category", "The category field is required.")
	case utf8.RuneCountInString(name) > models.MaxCategoryNameLength:
		verr.Add("category", "The category must not be greater than 255 characters.")
	}

	var categoryType *string
	if t := strings.ToLower(strings.TrimSpace(req.Type)); t != "" {
		if !models.IsValidEntryType(t) {
			verr.Add("type", "The selected type is invalid.")
		}
		categoryType = &t
	}

	if verr.HasErrors() {
		return nil, verr
	}

	exists, err := s.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, FieldError("category", "The category has already been taken.")
	}

	category := &models.Category{Name: name, Type: categoryType}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, FieldError("category", "The category has already been taken.")
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.events.LogCategoryCreated(ctx, category.ID, category.Name)
	return category, nil
}

// DeleteCategory removes a category that no transaction or budget references.
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}

	references, err := s.categoryRepo.CountReferences(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count category references: %w", err)
	}
	if references > 0 {
		return ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.events.LogCategoryDeleted(ctx, category.ID, category.Name)
	return nil
}
