package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpense retrieves an expense by id.
	GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses matching the filter.
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error)

	// CategorySummary aggregates totals and counts per category.
	CategorySummary(ctx context.Context) ([]domain.CategorySummary, error)

	// GrandTotal sums all expenses.
	GrandTotal(ctx context.Context) (*domain.ExpenseTotal, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}

// HealthSvc checks the availability of the storage backend.
type HealthSvc interface {
	CheckHealth(ctx context.Context) error
}
