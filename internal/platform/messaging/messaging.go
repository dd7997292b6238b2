// Package messaging wraps a RabbitMQ channel bound to one direct exchange.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

var ErrDeliveriesClosed = errors.New("messaging: delivery channel closed")

// Channel is the subset of *amqp091.Channel the client uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
	Close() error
}

type Client struct {
	conn     io.Closer
	channel  Channel
	exchange string
}

// Dial connects, opens a channel and declares the exchange.
func Dial(url, exchange string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	c, err := NewClient(ch, conn, exchange)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// NewClient declares a durable direct exchange on ch. conn may be nil.
func NewClient(ch Channel, conn io.Closer, exchange string) (*Client, error) {
	err := ch.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Client{conn: conn, channel: ch, exchange: exchange}, nil
}

// BindQueue declares a durable queue and binds it to routingKey.
func (c *Client) BindQueue(queue, routingKey string) error {
	if _, err := c.channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := c.channel.QueueBind(queue, routingKey, c.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// PublishJSON sends a persistent JSON message.
func (c *Client) PublishJSON(ctx context.Context, routingKey string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := c.channel.PublishWithContext(
		ctx,
		c.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

// Handler processes one message body. ErrPermanent marks a message that
// will never succeed and must not be requeued.
type Handler func(ctx context.Context, body []byte) error

var ErrPermanent = errors.New("messaging: permanent failure")

// Consume delivers messages from queue to h until ctx is done. Successful
// messages are acked; failures are requeued unless wrapped in ErrPermanent.
func (c *Client) Consume(ctx context.Context, queue string, h Handler) error {
	msgs, err := c.channel.Consume(
		queue, // queue
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	logger := log.WithFields(log.Fields{"component": "messaging", "queue": queue})
	logger.Info("consuming")

	for {
		select {
		case <-ctx.Done():
			logger.WithField("reason", ctx.Err()).Info("stopping consumer")
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return ErrDeliveriesClosed
			}
			if err := h(ctx, d.Body); err != nil {
				requeue := !errors.Is(err, ErrPermanent)
				logger.WithError(err).WithField("requeue", requeue).Error("handle message failed")
				_ = d.Nack(false, requeue)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
