package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsevents "github.com/SscSPs/expense_tracker/internal/core/ports/events"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

const msgExpenseNotFound = "Expense not found"

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	publisher   portsevents.Publisher
	now         func() time.Time
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithEventPublisher makes the service announce committed writes.
func WithEventPublisher(p portsevents.Publisher) ExpenseServiceOption {
	return func(s *expenseService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.now = now
	}
}

// NewExpenseService creates a new expense service with the provided options
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		expenseRepo: repo,
		publisher:   portsevents.NoopPublisher{},
		now:         domain.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	expense, err := domain.NewExpense(req.ToExpenseInput(), s.now())
	if err != nil {
		s.LogWarn(ctx, err, "Rejected expense")
		return nil, err
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("category", expense.Category))
	s.publish(ctx, domain.NewExpenseEvent(domain.ExpenseCreated, expense.ExpenseID, &expense))
	return &expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	id, err := domain.ParseExpenseID(expenseID)
	if err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(ctx, err, "get", id)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses",
			slog.String("category", filter.Category),
			slog.Bool("date_range", filter.HasDateRange()))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	id, err := domain.ParseExpenseID(expenseID)
	if err != nil {
		return nil, err
	}

	patch := domain.ExpensePatch{
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Amount != nil {
		amount, err := domain.ParsePatchAmount(req.Amount)
		if err != nil {
			s.LogWarn(ctx, err, "Rejected expense update", slog.String("expense_id", id))
			return nil, err
		}
		patch.Amount = &amount
	}
	if err := domain.ValidatePatch(patch); err != nil {
		s.LogWarn(ctx, err, "Rejected expense update", slog.String("expense_id", id))
		return nil, err
	}

	updated, err := s.expenseRepo.UpdateExpense(ctx, id, patch, s.now())
	if err != nil {
		return nil, s.lookupError(ctx, err, "update", id)
	}

	s.LogInfo(ctx, "Expense updated", slog.String("expense_id", id))
	s.publish(ctx, domain.NewExpenseEvent(domain.ExpenseUpdated, id, updated))
	return updated, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	id, err := domain.ParseExpenseID(expenseID)
	if err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, id); err != nil {
		return s.lookupError(ctx, err, "delete", id)
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", id))
	s.publish(ctx, domain.NewExpenseEvent(domain.ExpenseDeleted, id, nil))
	return nil
}

func (s *expenseService) CategorySummary(ctx context.Context) ([]domain.CategorySummary, error) {
	summary, err := s.expenseRepo.SummarizeByCategory(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize expenses by category")
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}
	if summary == nil {
		summary = []domain.CategorySummary{}
	}
	return summary, nil
}

func (s *expenseService) GrandTotal(ctx context.Context) (*domain.ExpenseTotal, error) {
	total, err := s.expenseRepo.TotalExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to total expenses")
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}
	return total, nil
}

// lookupError turns a repository failure on a single record into the
// error returned to callers.
func (s *expenseService) lookupError(ctx context.Context, err error, op, id string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(msgExpenseNotFound)
	}
	s.LogError(ctx, err, "Failed to "+op+" expense", slog.String("expense_id", id))
	return fmt.Errorf("failed to %s expense %s: %w", op, id, err)
}

// publish never fails the caller; the write has already been committed.
func (s *expenseService) publish(ctx context.Context, event domain.ExpenseEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish expense event",
			slog.String("event", string(event.Type)),
			slog.String("expense_id", event.ExpenseID))
	}
}
