package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/sqlquery"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpense inserts a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (id, date, category, amount, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.Date,
		m.Category,
		m.Amount,
		m.Description,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves a single expense.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + sqlquery.ExpenseColumns + ` FROM expenses WHERE id = $1;`
	rows, err := r.Pool.Query(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense %s: %w", expenseID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan expense %s: %w", expenseID, err)
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

// ListExpenses returns filtered expenses, newest date first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	query, args := sqlquery.ListExpenses(filter, sqlquery.Dollar)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

// UpdateExpense merges the supplied fields and returns the stored record.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expenseID string, patch domain.ExpensePatch, updatedAt time.Time) (*domain.Expense, error) {
	query := `
		UPDATE expenses SET
			date = COALESCE($2, date),
			category = COALESCE($3, category),
			amount = COALESCE($4, amount),
			description = COALESCE($5, description),
			updated_at = $6
		WHERE id = $1
		RETURNING ` + sqlquery.ExpenseColumns + `;
	`
	rows, err := r.Pool.Query(ctx, query,
		expenseID,
		patch.Date,
		patch.Category,
		patch.Amount,
		patch.Description,
		updatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SummarizeByCategory groups expenses in the database.
func (r *PgxExpenseRepository) SummarizeByCategory(ctx context.Context) ([]domain.CategorySummary, error) {
	query := `
		SELECT category, SUM(amount) AS total, COUNT(*) AS count
		FROM expenses
		GROUP BY category
		ORDER BY total DESC, category ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CategoryTotal])
	if err != nil {
		return nil, fmt.Errorf("failed to scan category summary: %w", err)
	}
	return mapping.ToDomainCategorySummaries(ms), nil
}

// TotalExpenses sums every expense. An empty table totals zero.
func (r *PgxExpenseRepository) TotalExpenses(ctx context.Context) (*domain.ExpenseTotal, error) {
	var (
		total decimal.Decimal
		count int64
	)
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM expenses;`).Scan(&total, &count)
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}
	return &domain.ExpenseTotal{Total: total, Count: count}, nil
}
