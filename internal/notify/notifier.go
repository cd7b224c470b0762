// Package notify delivers pending-sale messages to the seller.
package notify

import (
	"context"
	"fmt"

	"github.com/osse101/MarketBot_Go/internal/domain"
	"github.com/osse101/MarketBot_Go/internal/logger"
	"github.com/osse101/MarketBot_Go/internal/metrics"
)

// Notifier sends one message and reports whether it was delivered
type Notifier interface {
	Notify(ctx context.Context, message string) bool
}

// PendingSaleMessage describes a sold item the seller still has to hand over
func PendingSaleMessage(item domain.ListedItem) string {
	return fmt.Sprintf(PendingSaleTemplate, domain.FormatPrice(item.Price), item.Currency, item.HashName)
}

// LogNotifier writes messages to the log. It is used when no chat backend is configured.
type LogNotifier struct{}

// Notify always succeeds
func (LogNotifier) Notify(ctx context.Context, message string) bool {
	logger.FromContext(ctx).Info(LogMsgNotificationLogged, "message", message)
	metrics.NotificationsSent.WithLabelValues(BackendLog, metrics.ResultOK).Inc()
	return true
}

// Multi fans a message out to several notifiers. It succeeds if any of them does.
type Multi []Notifier

// Notify sends to every notifier
func (m Multi) Notify(ctx context.Context, message string) bool {
	delivered := false
	for _, n := range m {
		if n.Notify(ctx, message) {
			delivered = true
		}
	}
	return delivered
}

func record(ctx context.Context, backend string, err error) bool {
	log := logger.FromContext(ctx)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues(backend, metrics.ResultFailed).Inc()
		log.Warn(LogMsgNotificationFailed, "backend", backend, "error", err)
		return false
	}
	metrics.NotificationsSent.WithLabelValues(backend, metrics.ResultOK).Inc()
	log.Debug(LogMsgNotificationSent, "backend", backend)
	return true
}
