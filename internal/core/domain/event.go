package domain

import "time"

// ExpenseEventType names a change to an expense record.
type ExpenseEventType string

const (
	ExpenseCreated ExpenseEventType = "expense.created"
	ExpenseUpdated ExpenseEventType = "expense.updated"
	ExpenseDeleted ExpenseEventType = "expense.deleted"
)

// ExpenseEvent describes a committed write. Expense is nil for deletions.
type ExpenseEvent struct {
	Type       ExpenseEventType `json:"type"`
	ExpenseID  string           `json:"expense_id"`
	Expense    *Expense         `json:"expense,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// NewExpenseEvent builds an event stamped with the current time.
func NewExpenseEvent(t ExpenseEventType, id string, e *Expense) ExpenseEvent {
	return ExpenseEvent{Type: t, ExpenseID: id, Expense: e, OccurredAt: Now()}
}
