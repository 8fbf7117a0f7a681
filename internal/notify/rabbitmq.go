package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the channel operation RabbitNotifier depends on.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitNotifier publishes notifications to a durable queue on the default exchange.
type RabbitNotifier struct {
	conn   *amqp.Connection
	ch     Publisher
	queue  string
	logger *zap.Logger
}

// DialRabbitNotifier opens a connection and channel and declares queue.
func DialRabbitNotifier(url, queue string, logger *zap.Logger) (*RabbitNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	n := NewRabbitNotifierWithPublisher(ch, queue, logger)
	n.conn = conn
	return n, nil
}

func NewRabbitNotifierWithPublisher(p Publisher, queue string, logger *zap.Logger) *RabbitNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RabbitNotifier{ch: p, queue: queue, logger: logger}
}

func (r *RabbitNotifier) Notify(ctx context.Context, n Notification) {
	body, err := json.Marshal(n)
	if err != nil {
		r.logger.Error("marshal notification", zap.Error(err))
		return
	}
	err = r.ch.PublishWithContext(ctx, "", r.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		r.logger.Error("rabbitmq publish failed", zap.Error(err), zap.String("queue", r.queue))
	}
}

// Close closes the underlying connection, which also closes the channel.
func (r *RabbitNotifier) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}
