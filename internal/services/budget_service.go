package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	BudgetChartID       = "budget-chart"
	MaxBudgetPurposeLen = 100
)

// BudgetChartPalette colours budget chart slices in order, cycling.
var BudgetChartPalette = []string{"#eab308", "#f97316", "#ec4899", "#8b5cf6", "#3b82f6"}

type budgetService struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	aggregation  AggregationServiceInterface
	notifier     NotificationServiceInterface
	clock        Clock
	metrics      MetricsRecorderInterface
	events       EventLoggerInterface
	logger       *slog.Logger
}

func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	aggregation AggregationServiceInterface,
	notifier NotificationServiceInterface,
	clock Clock,
	metrics MetricsRecorderInterface,
	events EventLoggerInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		aggregation:  aggregation,
		notifier:     notifier,
		clock:        clock,
		metrics:      metrics,
		events:       events,
		logger:       logger,
	}
}

func (s *budgetService) CreateBudget(ctx context.Context, userID uuid.UUID, req *dto.BudgetRequest) (*models.Budget, error) {
	budget, err := s.buildBudget(ctx, req)
	if err != nil {
		return nil, err
	}
	budget.UserID = userID

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.events.LogBudgetSaved(ctx, budget.ID, userID, "created")
	return budget, nil
}

// UpdateBudget replaces every field of an existing budget owned by userID.
func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, req *dto.BudgetRequest) (*models.Budget, error) {
	existing, err := s.ownedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	budget, err := s.buildBudget(ctx, req)
	if err != nil {
		return nil, err
	}
	budget.ID = existing.ID
	budget.UserID = existing.UserID
	budget.CreatedAt = existing.CreatedAt

	if err := s.budgetRepo.Update(ctx, budget); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	s.events.LogBudgetSaved(ctx, budget.ID, userID, "updated")
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error {
	if _, err := s.ownedBudget(ctx, userID, budgetID); err != nil {
		return err
	}

	if err := s.budgetRepo.Delete(ctx, budgetID); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return ErrBudgetNotFound
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	s.events.LogBudgetDeleted(ctx, budgetID, userID)
	return nil
}

func (s *budgetService) ownedBudget(ctx context.Context, userID, budgetID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	if budget.UserID != userID {
		return nil, ErrForbidden
	}
	return budget, nil
}

// buildBudget validates req and resolves the stored window.
func (s *budgetService) buildBudget(ctx context.Context, req *dto.BudgetRequest) (*models.Budget, error) {
	verr := NewValidationError()

	var category *models.Category
	categoryID, err := uuid.Parse(strings.TrimSpace(req.CategoryID))
	if err != nil {
		verr.Add("category_id", "The category id must be a valid UUID.")
	} else {
		category, err = s.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			if !errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, fmt.Errorf("failed to resolve category: %w", err)
			}
			verr.Add("category_id", "The selected category id is invalid.")
		}
	}

	amount, err := validation.ParseMoney(req.Amount.String())
	if err != nil {
		verr.Add("amount", "The amount must be a non-negative number with at most 2 decimal places.")
	}

	period := strings.ToLower(strings.TrimSpace(req.Period))
	if period == "" {
		period = models.BudgetPeriodCustom
	} else if !models.IsRequestableBudgetPeriod(period) {
		verr.Add("period", "The selected period is invalid.")
	}

	purpose := models.NormalizePurpose(req.Purpose)
	if utf8.RuneCountInString(string(purpose)) > MaxBudgetPurposeLen {
		verr.Add("purpose", "The purpose must not be greater than 100 characters.")
	}

	start := parseOptionalDate(req.StartDate, "start_date", verr)
	end := parseOptionalDate(req.EndDate, "end_date", verr)
	if start != nil && end != nil && end.Before(*start) {
		verr.Add("end_date", "The end date must be a date after or equal to start date.")
	}

	if verr.HasErrors() {
		return nil, verr
	}

	window := DeriveBudgetWindow(period, s.clock.Now(), start, end)
	if !window.IsValid() {
		return nil, FieldError("end_date", "The end date must be a date after or equal to start date.")
	}

	return &models.Budget{
		CategoryID: categoryID,
		Amount:     amount,
		Period:     period,
		Purpose:    purpose,
		StartDate:  window.Start,
		EndDate:    window.End,
		AutoReset:  ParseAutoReset(req.AutoReset.String()),
		Category:   category,
	}, nil
}

func parseOptionalDate(raw, field string, verr *ValidationError) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed, err := validation.ParseDate(raw)
	if err != nil {
		verr.Add(field, fmt.Sprintf("The %s is not a valid date.", strings.ReplaceAll(field, "_", " ")))
		return nil
	}
	return &parsed
}

// FetchBudgets rolls expired auto-reset budgets forward, summarizes every
// budget of userID, evaluates thresholds and aggregates per purpose.
func (s *budgetService) FetchBudgets(ctx context.Context, userID uuid.UUID) (*models.BudgetOverview, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricBudgetOverviewDuration, time.Since(start))
	}()

	if _, err := s.RollOver(ctx, userID); err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	overview := &models.BudgetOverview{
		Budgets:          make([]models.BudgetSummary, 0, len(budgets)),
		BudgetsOnPurpose: make(map[string]models.PurposeSummary),
	}

	for i := range budgets {
		summary, err := s.aggregation.SummarizeBudget(ctx, &budgets[i])
		if err != nil {
			return nil, err
		}
		if _, err := s.notifier.EvaluateBudget(ctx, summary); err != nil {
			s.logger.ErrorContext(ctx, "failed to evaluate budget",
				slog.String("budget_id", summary.ID.String()),
				slog.String("error", err.Error()))
		}
		overview.Budgets = append(overview.Budgets, *summary)
	}

	purposes, err := s.purposes(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, purpose := range purposes {
		summary, err := s.aggregation.SummarizePurpose(ctx, userID, purpose)
		if err != nil {
			return nil, err
		}
		overview.BudgetsOnPurpose[purpose.String()] = *summary
	}

	return overview, nil
}

// purposes lists Savings and Expenses followed by every other purpose in use.
func (s *budgetService) purposes(ctx context.Context, userID uuid.UUID) ([]models.Purpose, error) {
	distinct, err := s.budgetRepo.GetDistinctPurposes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget purposes: %w", err)
	}

	purposes := []models.Purpose{models.PurposeSavings, models.PurposeExpenses}
	for _, purpose := range distinct {
		if purpose.IsOther() {
			purposes = append(purposes, purpose)
		}
	}
	return purposes, nil
}

// RollOver moves auto-reset calendar budgets whose window has ended to the
// calendar window containing now. It returns the number of budgets moved.
func (s *budgetService) RollOver(ctx context.Context, userID uuid.UUID) (int, error) {
	now := s.clock.Now()

	expired, err := s.budgetRepo.GetExpiredAutoReset(ctx, userID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired budgets: %w", err)
	}

	rolled := 0
	for i := range expired {
		budget := &expired[i]
		window, ok := CalendarWindow(budget.Period, now)
		if !ok {
			continue
		}

		oldStart := budget.StartDate
		budget.StartDate = window.Start
		budget.EndDate = window.End
		if err := s.budgetRepo.Update(ctx, budget); err != nil {
			return rolled, fmt.Errorf("failed to roll over budget %s: %w", budget.ID, err)
		}

		rolled++
		s.metrics.IncrementCounter(MetricBudgetRolledOver, nil)
		s.events.LogBudgetRolledOver(ctx, budget.ID, oldStart, window.Start)
	}

	return rolled, nil
}

// BudgetChartData returns the budgeted total per category for the breakdown chart.
func (s *budgetService) BudgetChartData(ctx context.Context, userID uuid.UUID) (*models.BudgetChart, error) {
	amounts, err := s.budgetRepo.GetAmountsByCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget amounts: %w", err)
	}

	title := cases.Title(language.English)
	chart := &models.BudgetChart{
		ID:          BudgetChartID,
		ChartData:   make([]models.BudgetChartEntry, 0, len(amounts)),
		ChartConfig: make(map[string]models.ChartSeriesConfig, len(amounts)),
	}

	for i, amount := range amounts {
		color := BudgetChartPalette[i%len(BudgetChartPalette)]
		chart.ChartData = append(chart.ChartData, models.BudgetChartEntry{
			Label:  amount.CategoryName,
			Values: amount.TotalAmount,
			Fill:   color,
		})
		chart.ChartConfig[amount.CategoryName] = models.ChartSeriesConfig{
			Label: title.String(amount.CategoryName),
			Color: color,
		}
	}

	return chart, nil
}
