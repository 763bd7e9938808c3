package sqlquery

import (
	"testing"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestListExpenses(t *testing.T) {
	const base = "SELECT " + ExpenseColumns + " FROM expenses"
	const order = " ORDER BY date DESC, created_at ASC, id ASC"

	tests := []struct {
		name      string
		filter    domain.ExpenseFilter
		ph        Placeholder
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			ph:        Dollar,
			wantQuery: base + order,
		},
		{
			name:      "category only",
			filter:    domain.ExpenseFilter{Category: "food"},
			ph:        Dollar,
			wantQuery: base + " WHERE category = $1" + order,
			wantArgs:  []any{"food"},
		},
		{
			name:      "category and range",
			filter:    domain.ExpenseFilter{Category: "food", StartDate: "2024-01-01", EndDate: "2024-01-31"},
			ph:        Dollar,
			wantQuery: base + " WHERE category = $1 AND date BETWEEN $2 AND $3" + order,
			wantArgs:  []any{"food", "2024-01-01", "2024-01-31"},
		},
		{
			name:      "range with question marks",
			filter:    domain.ExpenseFilter{StartDate: "2024-01-01", EndDate: "2024-01-31"},
			ph:        Question,
			wantQuery: base + " WHERE date BETWEEN ? AND ?" + order,
			wantArgs:  []any{"2024-01-01", "2024-01-31"},
		},
		{
			name:      "single bound is ignored",
			filter:    domain.ExpenseFilter{EndDate: "2024-01-31"},
			ph:        Question,
			wantQuery: base + order,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := ListExpenses(tt.filter, tt.ph)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
