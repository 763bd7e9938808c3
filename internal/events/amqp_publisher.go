// Package events publishes expense changes to RabbitMQ.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsevents "github.com/SscSPs/expense_tracker/internal/core/ports/events"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// publishChannel is the part of *amqp091.Channel the publisher needs.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher sends each event to a durable direct exchange, routed by
// event type (expense.created, expense.updated, expense.deleted).
type AMQPPublisher struct {
	conn         *amqp091.Connection
	channel      publishChannel
	exchangeName string
	mu           sync.Mutex // amqp channels are not safe for concurrent publishing
}

var _ portsevents.Publisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials the broker and declares the exchange.
func NewAMQPPublisher(url, exchangeName string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: channel, exchangeName: exchangeName}, nil
}

// newPublisherWithChannel builds a publisher over an already open channel.
func newPublisherWithChannel(ch publishChannel, exchangeName string) *AMQPPublisher {
	return &AMQPPublisher{channel: ch, exchangeName: exchangeName}
}

// Publish sends one event. Delivery is attempted once; callers log failures.
func (p *AMQPPublisher) Publish(ctx context.Context, event domain.ExpenseEvent) error {
	body, err := NewExpenseMessage(event).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	// The request context may end right after the response is written.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	p.mu.Lock()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName,     // exchange
		string(event.Type), // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			MessageId:    event.ExpenseID + ":" + string(event.Type),
			Body:         body,
		},
	)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Published expense event",
		slog.String("type", string(event.Type)),
		slog.String("expense_id", event.ExpenseID),
		slog.String("exchange", p.exchangeName))
	return nil
}

// Close shuts the channel and connection.
func (p *AMQPPublisher) Close() error {
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
