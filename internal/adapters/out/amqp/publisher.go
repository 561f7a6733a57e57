// Package amqp publishes fleet events to a RabbitMQ topic exchange. The routing key is
// "logistics.<EventType>", so consumers bind to e.g. "logistics.DeliveryScheduled".
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"logistics/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const routingKeyPrefix = "logistics."

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	ch       Channel
	exchange string

	// amqp channels are not safe for concurrent publishing.
	mu sync.Mutex
}

// Dial connects to the broker and declares a durable topic exchange.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := NewPublisher(ch, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// NewPublisher publishes on an already open channel.
func NewPublisher(ch Channel, exchange string) (*Publisher, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange}, nil
}

// Publish sends each event as a persistent JSON message. It stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, events ...ports.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range events {
		body, err := json.Marshal(e)
		if err != nil {
			return err
		}

		msg := amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Type:         string(e.Type),
			Timestamp:    e.OccurredAt,
			Headers: amqp.Table{
				"x-source":       "logistics",
				"x-aggregate-id": e.AggregateID,
			},
		}
		if err = p.ch.PublishWithContext(ctx, p.exchange, routingKeyPrefix+string(e.Type), false, false, msg); err != nil {
			return fmt.Errorf("publish %s: %w", e.Type, err)
		}
	}
	return nil
}

func (p *Publisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		if connErr := p.conn.Close(); err == nil {
			err = connErr
		}
	}
	return err
}
