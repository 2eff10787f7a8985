package rabbitmq

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront/pkg/logger"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
	"go.uber.org/multierr"
)

// DefaultExchange is the topic exchange domain events go to when none is configured.
const DefaultExchange = "storefront.events"

var errChannelClosed = errors.New("RabbitMQ channel is not available")

// channel is the subset of *amqp.Channel the client uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Client holds the RabbitMQ connection and channel used to publish events.
type Client struct {
	conn     *amqp.Connection
	channel  channel
	exchange string
	mu       sync.Mutex
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL      string
	Exchange string
}

// NewClient connects to RabbitMQ, opens a channel and declares the durable
// topic exchange events are published to.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	client, err := newClient(ch, cfg.Exchange)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	client.conn = conn

	logger.Logger.Info().Str("exchange", client.exchange).Msg("RabbitMQ client connected")
	return client, nil
}

func newClient(ch channel, exchange string) (*Client, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &Client{channel: ch, exchange: exchange}, nil
}

// Exchange returns the name of the exchange events are published to.
func (c *Client) Exchange() string {
	return c.exchange
}

// Publish sends a persistent JSON message to the exchange under routingKey.
func (c *Client) Publish(routingKey string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel == nil {
		return errChannelClosed
	}

	err := c.channel.Publish(
		c.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    uuid.NewString(),
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}

	logger.Logger.Debug().Str("routing_key", routingKey).Int("bytes", len(body)).Msg("event published")
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.channel != nil {
		if cerr := c.channel.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to close channel: %w", cerr))
		}
		c.channel = nil
	}
	if c.conn != nil {
		if cerr := c.conn.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to close connection: %w", cerr))
		}
		c.conn = nil
	}
	return err
}
