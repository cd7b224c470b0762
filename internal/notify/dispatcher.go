package notify

import (
	"context"

	"github.com/osse101/MarketBot_Go/internal/logger"
	"github.com/osse101/MarketBot_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking. *worker.Pool satisfies it.
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Dispatcher hands notifications to a worker pool so callers never wait on delivery
type Dispatcher struct {
	notifier Notifier
	queue    Enqueuer
}

// NewDispatcher creates a dispatcher
func NewDispatcher(notifier Notifier, queue Enqueuer) *Dispatcher {
	return &Dispatcher{notifier: notifier, queue: queue}
}

// Dispatch queues message and returns immediately. It reports false if the
// message was dropped because the queue is full.
func (d *Dispatcher) Dispatch(ctx context.Context, message string) bool {
	job := &Job{
		Notifier:  d.notifier,
		Message:   message,
		RequestID: logger.GetRequestID(ctx),
	}
	if !d.queue.TryEnqueue(job) {
		logger.FromContext(ctx).Warn(LogMsgNotificationDrop, "message", message)
		return false
	}
	logger.FromContext(ctx).Debug(LogMsgNotificationQueued)
	return true
}

// Job delivers one message
type Job struct {
	Notifier  Notifier
	Message   string
	RequestID string
}

// Process implements worker.Job. Delivery failure is already logged and
// counted by the notifier, so it is not returned as an error.
func (j *Job) Process(ctx context.Context) error {
	if j.RequestID != "" {
		ctx = logger.WithRequestID(ctx, j.RequestID)
	}
	j.Notifier.Notify(ctx, j.Message)
	return nil
}
