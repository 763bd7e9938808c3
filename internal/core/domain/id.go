package domain

import (
	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/google/uuid"
)

// NewExpenseID returns a random id for a new record.
func NewExpenseID() string {
	return uuid.NewString()
}

// ParseExpenseID checks that id is a well-formed UUID and returns it in
// canonical lower-case form, so lookups never hit the store with junk.
func ParseExpenseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", apperrors.NewInvalidIDError()
	}
	return u.String(), nil
}
