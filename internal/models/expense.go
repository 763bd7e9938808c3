package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the storage row of the expenses table.
type Expense struct {
	ExpenseID   string          `db:"id"`
	Date        string          `db:"date"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   *time.Time      `db:"updated_at"`
}

// CategoryTotal is one row of the grouped category query.
type CategoryTotal struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
	Count    int64           `db:"count"`
}
