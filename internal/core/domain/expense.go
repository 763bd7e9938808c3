package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record.
type Expense struct {
	ExpenseID   string          `json:"id"`
	Date        string          `json:"date" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"` // nil until the first update
}

// ExpenseInput carries the raw client fields for a new expense. Amount is
// whatever the JSON decoder produced (number, numeric string or nothing).
type ExpenseInput struct {
	Date        string
	Category    string
	Amount      any
	Description string
}

// ExpensePatch lists the fields an update may change. Nil means untouched.
type ExpensePatch struct {
	Date        *string
	Category    *string
	Amount      *decimal.Decimal
	Description *string
}

// IsEmpty reports whether the patch changes no field. An empty patch still
// refreshes updated_at.
func (p ExpensePatch) IsEmpty() bool {
	return p.Date == nil && p.Category == nil && p.Amount == nil && p.Description == nil
}

// Apply merges the patch into e and stamps the update time.
func (e *Expense) Apply(p ExpensePatch, now time.Time) {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	e.UpdatedAt = &now
}

// ExpenseFilter narrows List results.
type ExpenseFilter struct {
	Category  string
	StartDate string
	EndDate   string
}

// HasDateRange is true only when both bounds are set. A lone bound is
// ignored, so ?start_date=2024-01-01 alone returns every date.
func (f ExpenseFilter) HasDateRange() bool {
	return f.StartDate != "" && f.EndDate != ""
}

// Matches reports whether e passes the filter.
func (f ExpenseFilter) Matches(e Expense) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.HasDateRange() && (e.Date < f.StartDate || e.Date > f.EndDate) {
		return false
	}
	return true
}

// Now returns the timestamp used for created_at and updated_at. Storage
// backends keep microseconds, so the value is truncated to match.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
