package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMatchesSentinels(t *testing.T) {
	err := NewValidationError("amount must be positive number")

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "amount must be positive number", err.Error())

	wrapped := fmt.Errorf("service: %w", NewNotFoundError("Expense not found"))
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestAppErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageUnavailableError(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest},
		{"invalid id", NewInvalidIDError(), http.StatusBadRequest},
		{"not found", NewNotFoundError("gone"), http.StatusNotFound},
		{"bare not found sentinel", fmt.Errorf("repo: %w", ErrNotFound), http.StatusNotFound},
		{"storage", NewStorageUnavailableError(errors.New("down")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessageHidesInternalCauses(t *testing.T) {
	assert.Equal(t, "Invalid expense ID", PublicMessage(NewInvalidIDError(), "fallback"))
	assert.Equal(t, "fallback", PublicMessage(errors.New("pq: secret detail"), "fallback"))
	assert.Equal(t, "fallback", PublicMessage(NewStorageUnavailableError(errors.New("dial tcp")), "fallback"))
}
