package services

import (
	"context"
	"time"

	"fleet/internal/domain"
	"fleet/internal/notify"
	"fleet/internal/utils"

	"go.uber.org/zap"
)

// ErrorHandler normalizes failures and reports each one to the user exactly once.
type ErrorHandler struct {
	Notifier notify.Notifier
	Logger   *zap.Logger
	Now      func() time.Time
}

func NewErrorHandler(n notify.Notifier, logger *zap.Logger) *ErrorHandler {
	return &ErrorHandler{Notifier: n, Logger: logger}
}

// Handle normalizes err, emits one destructive notification (customMessage, when
// non-empty, replaces the error text) and returns the normalized error. The caller
// still owns the failure and must propagate it.
func (h *ErrorHandler) Handle(ctx context.Context, err any, customMessage string) domain.APIError {
	apiErr := domain.Normalize(err)

	desc := customMessage
	if desc == "" {
		desc = apiErr.Message
	}
	reqID := utils.RequestIDFrom(ctx)

	h.logger().Error("request failed",
		zap.String("request_id", reqID),
		zap.String("message", apiErr.Message),
		zap.Int("status", apiErr.Status),
		zap.String("code", apiErr.Code),
		zap.String("context", customMessage),
	)

	if h.Notifier != nil {
		h.Notifier.Notify(ctx, notify.Notification{
			Title:       "Error",
			Description: desc,
			Severity:    notify.SeverityDestructive,
			RequestID:   reqID,
			CreatedAt:   h.now(),
		})
	}
	return apiErr
}

func (h *ErrorHandler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return zap.L()
}

func (h *ErrorHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
