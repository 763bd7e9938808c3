package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/sqlquery"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
)

type SQLiteExpenseRepository struct {
	BaseRepository
}

func newSQLiteExpenseRepository(db *sql.DB) portsrepo.ExpenseRepositoryFacade {
	return &SQLiteExpenseRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*SQLiteExpenseRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.Date,
		&m.Category,
		&m.Amount,
		&m.Description,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *SQLiteExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO expenses (id, date, category, amount, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);`,
		m.ExpenseID,
		m.Date,
		m.Category,
		m.Amount.String(),
		m.Description,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

func (r *SQLiteExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+sqlquery.ExpenseColumns+` FROM expenses WHERE id = ?;`, expenseID)
	m, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

func (r *SQLiteExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	query, args := sqlquery.ListExpenses(filter, sqlquery.Question)
	return r.queryExpenses(ctx, query, args...)
}

func (r *SQLiteExpenseRepository) queryExpenses(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	ms := make([]models.Expense, 0)
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *SQLiteExpenseRepository) UpdateExpense(ctx context.Context, expenseID string, patch domain.ExpensePatch, updatedAt time.Time) (*domain.Expense, error) {
	var amount *string
	if patch.Amount != nil {
		s := patch.Amount.String()
		amount = &s
	}

	// RETURNING columns carry no declared type, so the driver would hand
	// back timestamps as text; re-read the row instead.
	res, err := r.DB.ExecContext(ctx, `
		UPDATE expenses SET
			date = COALESCE(?, date),
			category = COALESCE(?, category),
			amount = COALESCE(?, amount),
			description = COALESCE(?, description),
			updated_at = ?
		WHERE id = ?;`,
		patch.Date,
		patch.Category,
		amount,
		patch.Description,
		updatedAt.UTC(),
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	if n == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindExpenseByID(ctx, expenseID)
}

func (r *SQLiteExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SummarizeByCategory aggregates in Go: amounts are stored as decimal text
// and SQLite's SUM would round them through floating point.
func (r *SQLiteExpenseRepository) SummarizeByCategory(ctx context.Context) ([]domain.CategorySummary, error) {
	all, err := r.queryExpenses(ctx, `SELECT `+sqlquery.ExpenseColumns+` FROM expenses;`)
	if err != nil {
		return nil, err
	}
	return domain.SummarizeByCategory(all), nil
}

func (r *SQLiteExpenseRepository) TotalExpenses(ctx context.Context) (*domain.ExpenseTotal, error) {
	all, err := r.queryExpenses(ctx, `SELECT `+sqlquery.ExpenseColumns+` FROM expenses;`)
	if err != nil {
		return nil, err
	}
	total := domain.TotalOf(all)
	return &total, nil
}
