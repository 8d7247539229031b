package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher holds an open AMQP connection and publishes persistent JSON
// messages to durable queues on the default exchange. A nil Publisher is
// safe to use and drops every message, so the API can run without a broker.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	log  *zap.Logger
}

// NewPublisher dials the broker and declares the known queues. Declaration
// is idempotent; durable queues survive broker restarts.
func NewPublisher(url string, log *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	for _, name := range []string{QueueBookingCreated, QueueBookingStatus, QueueUserFollowed} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("declare queue %s: %w", name, err)
		}
	}

	return &Publisher{
		conn: conn,
		ch:   ch,
		log:  log.With(zap.String("component", "queue_publisher")),
	}, nil
}

// Publish marshals the event and sends it to the named queue. Errors are
// logged and returned so callers can choose to ignore them; publishing
// failures never interrupt the main request flow.
func (p *Publisher) Publish(ctx context.Context, queueName string, event any) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to marshal event", zap.Error(err), zap.String("queue", queueName))
		return fmt.Errorf("marshal event for %s: %w", queueName, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		p.log.Error("Failed to publish event", zap.Error(err), zap.String("queue", queueName))
		return fmt.Errorf("publish to %s: %w", queueName, err)
	}

	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// Consume opens a dedicated connection and delivers messages from the named
// queue to handler until ctx is cancelled. Handler errors cause a requeue;
// delivery is at-least-once, so handlers must tolerate duplicates.
func Consume(ctx context.Context, url, queueName string, log *zap.Logger, handler func(ctx context.Context, body []byte) error) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", queueName, err)
	}

	deliveries, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume queue %s: %w", queueName, err)
	}

	log.Info("Consuming queue", zap.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel for %s closed", queueName)
			}
			if err := handler(ctx, d.Body); err != nil {
				log.Error("Handler failed, requeueing",
					zap.Error(err),
					zap.String("queue", queueName),
				)
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}
}
