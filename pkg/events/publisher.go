// Package events publishes negotiation lifecycle events to a RabbitMQ
// topic exchange. When no broker is configured the no-op publisher is
// used and the service runs standalone.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "negotiation_exchange"

	connectRetries = 5
)

type Config struct {
	URL      string
	Exchange string
}

type RabbitPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewRabbitPublisher dials the broker with retry and declares the
// topic exchange.
func NewRabbitPublisher(config Config) (*RabbitPublisher, error) {
	if config.Exchange == "" {
		config.Exchange = DefaultExchange
	}

	var conn *amqp.Connection
	var err error
	for i := 0; i < connectRetries; i++ {
		conn, err = amqp.Dial(config.URL)
		if err == nil {
			break
		}
		time.Sleep(time.Duration(i*i)*time.Second + time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ after retries: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		config.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", config.Exchange, err)
	}

	return &RabbitPublisher{conn: conn, channel: channel, exchange: config.Exchange}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	return p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

func (p *RabbitPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	return nil
}
