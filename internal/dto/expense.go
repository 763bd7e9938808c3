package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to create a new expense.
// Amount accepts a JSON number or a numeric string.
type CreateExpenseRequest struct {
	Date        string `json:"date" example:"2024-03-01"`
	Category    string `json:"category" example:"food"`
	Amount      any    `json:"amount" swaggertype:"number" example:"12.5"`
	Description string `json:"description" example:"lunch"`
}

// ToExpenseInput converts the request into the domain input.
func (r CreateExpenseRequest) ToExpenseInput() domain.ExpenseInput {
	return domain.ExpenseInput{
		Date:        r.Date,
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
	}
}

// UpdateExpenseRequest carries the fields to change. Omitted fields keep
// their stored value.
type UpdateExpenseRequest struct {
	Date        *string `json:"date,omitempty" example:"2024-03-02"`
	Category    *string `json:"category,omitempty" example:"transport"`
	Amount      any     `json:"amount,omitempty" swaggertype:"number" example:"8"`
	Description *string `json:"description,omitempty"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string     `json:"_id"`
	Date        string     `json:"date"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Date:        e.Date,
		Category:    e.Category,
		Amount:      e.Amount.InexactFloat64(),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToListExpenseResponse converts a slice of expenses. Never returns nil so
// an empty result encodes as [].
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}

// CategorySummaryResponse is one row of the per-category summary. The
// category is keyed "_id" as existing clients expect.
type CategorySummaryResponse struct {
	Category string  `json:"_id"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

func ToCategorySummaryResponse(summaries []domain.CategorySummary) []CategorySummaryResponse {
	res := make([]CategorySummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = CategorySummaryResponse{
			Category: s.Category,
			Total:    s.Total.InexactFloat64(),
			Count:    s.Count,
		}
	}
	return res
}

// TotalResponse is the grand total over all expenses.
type TotalResponse struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

func ToTotalResponse(t *domain.ExpenseTotal) TotalResponse {
	return TotalResponse{Total: t.Total.InexactFloat64(), Count: t.Count}
}

// HealthResponse reports service and database status.
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database" example:"connected"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
