package events

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// Publisher delivers expense change notifications to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, event domain.ExpenseEvent) error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.ExpenseEvent) error { return nil }

var _ Publisher = NoopPublisher{}
