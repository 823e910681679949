package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/validation"

	"github.com/google/uuid"
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	aggregation     AggregationServiceInterface
	notifier        NotificationServiceInterface
	attachments     AttachmentStoreInterface
	metrics         MetricsRecorderInterface
	events          EventLoggerInterface
	logger          *slog.Logger
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	aggregation AggregationServiceInterface,
	notifier NotificationServiceInterface,
	attachments AttachmentStoreInterface,
	metrics MetricsRecorderInterface,
	events EventLoggerInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
		aggregation:     aggregation,
		notifier:        notifier,
		attachments:     attachments,
		metrics:         metrics,
		events:          events,
		logger:          logger,
	}
}

// CreateTransaction records a ledger entry for userID and re-evaluates the
// budgets of its category whose window contains the entry date.
func (s *transactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	verr := NewValidationError()

	amount, err := validation.ParseMoney(req.Amount.String())
	if err != nil {
		verr.Add("amount", "The amount must be a non-negative number with at most 2 decimal places.")
	}

	transactionType := strings.ToLower(strings.TrimSpace(req.Type))
	if !models.IsValidEntryType(transactionType) {
		verr.Add("type", "The selected type is invalid.")
	}

	transactionDate, err := validation.ParseDate(req.TransactionDate)
	if err != nil {
		verr.Add("transaction_date", "The transaction date is not a valid date.")
	}

	var category *models.Category
	if name := models.NormalizeCategoryName(req.Category); name != "" {
		category, err = s.categoryRepo.GetByName(ctx, name)
		if err != nil {
			if !errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, fmt.Errorf("failed to resolve category: %w", err)
			}
			verr.Add("category", "The selected category is invalid.")
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	paths, err := storeAttachments(ctx, s.attachments, TransactionAttachmentsFolder, req.Attachments, s.logger)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:          userID,
		Amount:          amount,
		Type:            transactionType,
		TransactionDate: transactionDate,
		Description:     strings.TrimSpace(req.Description),
		Attachments:     paths,
	}
	if category != nil {
		transaction.CategoryID = &category.ID
	}
	if method := strings.TrimSpace(req.PaymentMethod); method != "" {
		transaction.PaymentMethod = &method
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		removeAttachments(ctx, s.attachments, paths, s.logger)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	transaction.Category = category

	s.metrics.IncrementCounter(MetricTransactionCreated, map[string]string{"type": transaction.Type})
	s.events.LogTransactionCreated(ctx, transaction.ID, userID, transaction.Type, transaction.Amount.StringFixed(2))

	s.evaluateBudgets(ctx, transaction)

	return transaction, nil
}

// evaluateBudgets runs threshold evaluation for the budgets the transaction
// counts towards. Failures are logged; the transaction is already stored.
func (s *transactionService) evaluateBudgets(ctx context.Context, transaction *models.Transaction) {
	if transaction.CategoryID == nil {
		return
	}

	budgets, err := s.budgetRepo.GetByUserAndCategory(ctx, transaction.UserID, *transaction.CategoryID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load budgets for evaluation",
			slog.String("transaction_id", transaction.ID.String()),
			slog.String("error", err.Error()))
		return
	}

	for i := range budgets {
		budget := &budgets[i]
		if !budget.Window().Contains(transaction.TransactionDate) {
			continue
		}
		if budget.Category == nil {
			budget.Category = transaction.Category
		}

		summary, err := s.aggregation.SummarizeBudget(ctx, budget)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to summarize budget",
				slog.String("budget_id", budget.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if _, err := s.notifier.EvaluateBudget(ctx, summary); err != nil {
			s.logger.ErrorContext(ctx, "failed to evaluate budget",
				slog.String("budget_id", budget.ID.String()),
				slog.String("error", err.Error()))
		}
	}
}

func (s *transactionService) ListTransactions(ctx context.Context, filters models.TransactionFilters) (*models.TransactionPage, error) {
	filters.Normalize()

	transactions, total, err := s.transactionRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return models.NewTransactionPage(transactions, total, filters.Page, filters.PerPage), nil
}

// DeleteTransaction removes a transaction owned by userID along with its files.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}
	if transaction.UserID != userID {
		return ErrForbidden
	}

	if err := s.transactionRepo.Delete(ctx, transactionID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	removeAttachments(ctx, s.attachments, transaction.Attachments, s.logger)

	s.metrics.IncrementCounter(MetricTransactionDeleted, nil)
	s.events.LogTransactionDeleted(ctx, transactionID, userID)
	return nil
}
