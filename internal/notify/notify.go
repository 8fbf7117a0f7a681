// Package notify delivers user-facing notifications (toasts) raised by the data layer.
package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	RequestID   string    `json:"request_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notifier is fire-and-forget: delivery failures are logged by the implementation.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	Logger *zap.Logger
}

func (l LogNotifier) Notify(_ context.Context, n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = zap.L()
	}
	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("severity", string(n.Severity)),
		zap.String("request_id", n.RequestID),
	}
	if n.Severity == SeverityDestructive {
		logger.Warn(n.Description, fields...)
		return
	}
	logger.Info(n.Description, fields...)
}

// Multi fans a notification out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, x := range m {
		if x != nil {
			x.Notify(ctx, n)
		}
	}
}

// Buffer keeps the most recent notifications for the dashboard to poll.
type Buffer struct {
	mu    sync.Mutex
	size  int
	items []Notification
}

func NewBuffer(size int) *Buffer {
	if size <= 0 {
		size = 50
	}
	return &Buffer{size: size}
}

func (b *Buffer) Notify(_ context.Context, n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, n)
	if over := len(b.items) - b.size; over > 0 {
		b.items = append([]Notification(nil), b.items[over:]...)
	}
}

// Recent returns buffered notifications newest first.
func (b *Buffer) Recent() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Notification, 0, len(b.items))
	for i := len(b.items) - 1; i >= 0; i-- {
		out = append(out, b.items[i])
	}
	return out
}
