package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"

	"alfredoptarigan/ats-resume-analyzer/internal/models"
)

// EventPublisher announces workspace activity to interested listeners.
type EventPublisher interface {
	Publish(ctx context.Context, event models.WorkspaceEvent) error
	Close() error
}

type amqpPublisher struct {
	conn     *amqp.Connection
	exchange string
}

// NewEventPublisher dials RabbitMQ and declares a durable topic exchange.
func NewEventPublisher(url, exchange string) (EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	log.Printf("✅ Publishing workspace events to exchange '%s'\n", exchange)

	return &amqpPublisher{conn: conn, exchange: exchange}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, event models.WorkspaceEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	msg, err := newPublishing(event)
	if err != nil {
		return err
	}

	return ch.Publish(
		p.exchange,
		routingKey(event),
		false,
		false,
		msg,
	)
}

func newPublishing(event models.WorkspaceEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.Timestamp,
		Body:         body,
	}, nil
}

func (p *amqpPublisher) Close() error {
	return p.conn.Close()
}

func routingKey(event models.WorkspaceEvent) string {
	return fmt.Sprintf("workspace.%s", event.Action)
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, models.WorkspaceEvent) error { return nil }

func (noopPublisher) Close() error { return nil }
