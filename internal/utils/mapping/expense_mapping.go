package mapping

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Date:        d.Date,
		Category:    d.Category,
		Amount:      d.Amount,
		Description: d.Description,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   utcPtr(d.UpdatedAt),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense.
// Timestamps are normalised to UTC whatever zone the driver returned.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Date:        m.Date,
		Category:    m.Category,
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   utcPtr(m.UpdatedAt),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

func ToDomainCategorySummaries(ms []models.CategoryTotal) []domain.CategorySummary {
	ds := make([]domain.CategorySummary, len(ms))
	for i, m := range ms {
		ds[i] = domain.CategorySummary{Category: m.Category, Total: m.Total, Count: m.Count}
	}
	return ds
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
