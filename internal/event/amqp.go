package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/rabbitmq/amqp091-go"
)

type amqpPublisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

// NewPublisher dials url and declares a durable topic exchange. An empty url yields a
// publisher that drops everything.
func NewPublisher(url, exchange string) (Publisher, error) {
	if url == "" {
		config.Logger.Warn("AMQP_URL not set, event publishing is disabled")
		return NewNoopPublisher(), nil
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	config.Logger.Infof("Event publisher initialized with exchange: %s", exchange)

	return &amqpPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, e *Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		string(e.Type),
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
			Headers: amqp091.Table{
				"event_type": string(e.Type),
				"user_id":    e.UserID,
			},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	config.WithContext(ctx).Debugf("Published event: %s for user: %s", e.Type, e.UserID)
	return nil
}

func (p *amqpPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		config.Logger.WithError(err).Warn("Error closing RabbitMQ channel")
	}
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("error closing RabbitMQ connection: %w", err)
	}
	return nil
}
