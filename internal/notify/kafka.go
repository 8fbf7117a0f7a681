package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	skafka "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// kafkaSendTimeout bounds one background write.
const kafkaSendTimeout = 5 * time.Second

// Writer defines the subset of segmentio kafka.Writer we need.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// KafkaNotifier publishes notifications as JSON messages keyed by severity.
// Writes happen in the background; Notify never waits on the broker.
type KafkaNotifier struct {
	writer Writer
	logger *zap.Logger
	wg     sync.WaitGroup
}

func NewKafkaNotifier(brokerURL, topic string, logger *zap.Logger) *KafkaNotifier {
	w := &skafka.Writer{
		Addr:         skafka.TCP(brokerURL),
		Topic:        topic,
		Balancer:     &skafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: kafkaSendTimeout,
	}
	return NewKafkaNotifierWithWriter(w, logger)
}

// NewKafkaNotifierWithWriter allows injecting a test writer.
func NewKafkaNotifierWithWriter(w Writer, logger *zap.Logger) *KafkaNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaNotifier{writer: w, logger: logger}
}

func (k *KafkaNotifier) Notify(ctx context.Context, n Notification) {
	b, err := json.Marshal(n)
	if err != nil {
		k.logger.Error("marshal notification", zap.Error(err))
		return
	}
	msg := skafka.Message{Key: []byte(n.Severity), Value: b}

	// the request may finish (and cancel ctx) before the broker answers
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), kafkaSendTimeout)
	k.wg.Add(1)
	go func() {
		defer k.wg.Done()
		defer cancel()
		if err := k.writer.WriteMessages(sendCtx, msg); err != nil {
			k.logger.Error("kafka write failed", zap.Error(err), zap.String("title", n.Title))
		}
	}()
}

// Close waits for pending writes, then closes the writer.
func (k *KafkaNotifier) Close() error {
	k.wg.Wait()
	return k.writer.Close()
}
