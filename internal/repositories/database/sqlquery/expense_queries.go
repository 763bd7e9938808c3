// Package sqlquery builds the SQL shared by the relational expense stores.
package sqlquery

import (
	"strconv"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ExpenseColumns lists the expenses table columns in models.Expense order.
const ExpenseColumns = "id, date, category, amount, description, created_at, updated_at"

// Placeholder renders the n-th (1-based) bind parameter.
type Placeholder func(n int) string

// Dollar renders PostgreSQL style placeholders ($1, $2, ...).
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Question renders SQLite style placeholders.
func Question(int) string { return "?" }

// ListExpenses builds the filtered list query. Rows come back newest date
// first; rows sharing a date keep insertion order.
func ListExpenses(filter domain.ExpenseFilter, ph Placeholder) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, "category = "+ph(len(args)))
	}
	if filter.HasDateRange() {
		args = append(args, filter.StartDate)
		start := ph(len(args))
		args = append(args, filter.EndDate)
		conds = append(conds, "date BETWEEN "+start+" AND "+ph(len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(ExpenseColumns)
	b.WriteString(" FROM expenses")
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	b.WriteString(" ORDER BY date DESC, created_at ASC, id ASC")
	return b.String(), args
}
