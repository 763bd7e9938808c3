package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an application error so transport layers can map it
// without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindInvalidID
	KindNotFound
	KindStorageUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidID:
		return "invalid_id"
	case KindNotFound:
		return "not_found"
	case KindStorageUnavailable:
		return "storage_unavailable"
	default:
		return "internal"
	}
}

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidID indicates that an identifier is not syntactically valid.
var ErrInvalidID = errors.New("invalid id")

// ErrStorageUnavailable indicates the backing store could not be reached.
var ErrStorageUnavailable = errors.New("storage unavailable")

// AppError carries a Kind, a client-safe message and an optional cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *AppError) Unwrap() error { return e.Err }

// Is lets errors.Is match an AppError against the package sentinels by kind.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrInvalidID:
		return e.Kind == KindInvalidID
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrStorageUnavailable:
		return e.Kind == KindStorageUnavailable
	}
	return false
}

// NewAppError builds an AppError of the given kind.
func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewValidationError(message string) *AppError {
	return NewAppError(KindValidation, message, nil)
}

func NewInvalidIDError() *AppError {
	return NewAppError(KindInvalidID, "Invalid expense ID", nil)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(KindNotFound, message, nil)
}

func NewStorageUnavailableError(err error) *AppError {
	return NewAppError(KindStorageUnavailable, "storage unavailable", err)
}

// KindOf reports the Kind of err. Bare sentinels are recognised too, so
// repositories may return ErrNotFound without wrapping it in an AppError.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrInvalidID):
		return KindInvalidID
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrStorageUnavailable):
		return KindStorageUnavailable
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code returned to API clients.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInvalidID:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text safe to show to clients. Internal and
// storage failures keep their cause out of the response.
func PublicMessage(err error, fallback string) string {
	switch KindOf(err) {
	case KindValidation, KindInvalidID, KindNotFound:
		var appErr *AppError
		if errors.As(err, &appErr) && appErr.Message != "" {
			return appErr.Message
		}
		return err.Error()
	default:
		return fallback
	}
}
