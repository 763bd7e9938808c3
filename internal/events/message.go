package events

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// ExpenseMessage is the JSON body published for every expense change.
// Expense is omitted for deletions.
type ExpenseMessage struct {
	Type       string               `json:"type"`
	ExpenseID  string               `json:"expense_id"`
	Expense    *dto.ExpenseResponse `json:"expense,omitempty"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// NewExpenseMessage converts a domain event into its wire form.
func NewExpenseMessage(event domain.ExpenseEvent) *ExpenseMessage {
	msg := &ExpenseMessage{
		Type:       string(event.Type),
		ExpenseID:  event.ExpenseID,
		OccurredAt: event.OccurredAt,
	}
	if event.Expense != nil {
		resp := dto.ToExpenseResponse(event.Expense)
		msg.Expense = &resp
	}
	return msg
}

// ToJSON converts the message to JSON bytes
func (m *ExpenseMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseMessageFromJSON decodes a message body.
func ExpenseMessageFromJSON(data []byte) (*ExpenseMessage, error) {
	var msg ExpenseMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
