package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a single expense. Returns apperrors.ErrNotFound when absent.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses returns the expenses matching filter, newest date first.
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error)

	// SummarizeByCategory returns per-category totals, largest total first.
	SummarizeByCategory(ctx context.Context) ([]domain.CategorySummary, error)

	// TotalExpenses sums every stored expense.
	TotalExpenses(ctx context.Context) (*domain.ExpenseTotal, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new, already validated expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense merges patch into the stored record, sets updated_at and
	// returns the record as stored. Returns apperrors.ErrNotFound when absent.
	UpdateExpense(ctx context.Context, expenseID string, patch domain.ExpensePatch, updatedAt time.Time) (*domain.Expense, error)

	// DeleteExpense removes a record. Returns apperrors.ErrNotFound when nothing was deleted.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
