package reconcile

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/MarketBot_Go/internal/domain"
	"github.com/osse101/MarketBot_Go/internal/logger"
	"github.com/osse101/MarketBot_Go/internal/metrics"
)

// State of the price update loop
type State string

// Loop states. A drained loop can be started again.
const (
	StateIdle          State = "idle"
	StateRunning       State = "running"
	StateStopRequested State = "stop_requested"
	StateDrained       State = "drained"
)

// Status is a point-in-time view of the loop
type Status struct {
	State           State            `json:"state"`
	Iterations      uint64           `json:"iterations"`
	LastIterationAt time.Time        `json:"last_iteration_at,omitempty"`
	TrackedItems    int              `json:"tracked_items"`
	LastResult      *IterationResult `json:"last_result,omitempty"`
}

// Controller starts and stops the loop around an Engine. One loop runs at a time.
type Controller struct {
	engine *Engine
	delay  time.Duration

	mu         sync.Mutex
	state      State
	stop       chan struct{}
	done       chan struct{}
	lastResult *IterationResult
}

// NewController creates an idle controller. delay is slept between iterations.
func NewController(engine *Engine, delay time.Duration) *Controller {
	if delay < 0 {
		delay = DefaultLoopDelay
	}
	done := make(chan struct{})
	close(done)
	return &Controller{
		engine: engine,
		delay:  delay,
		state:  StateIdle,
		done:   done,
	}
}

// Start launches the loop. The loop keeps ctx values (request ids, loggers)
// but not its cancellation: only Stop ends it, so a finished HTTP request does
// not kill the loop it started.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateRunning || c.state == StateStopRequested {
		return domain.ErrAlreadyRunning
	}

	c.state = StateRunning
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	metrics.LoopRunning.Set(1)

	go c.run(context.WithoutCancel(ctx), c.stop, c.done)
	logger.FromContext(ctx).Info(LogMsgLoopStarted, "delay", c.delay)
	return nil
}

// Stop asks the loop to exit after the current iteration. It does not wait;
// use Done or Wait for that. Stopping a loop that is already stopping is a no-op.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateRunning:
		c.state = StateStopRequested
		close(c.stop)
		logger.Info(LogMsgStopRequested)
		return nil
	case StateStopRequested:
		return nil
	default:
		return domain.ErrNotRunning
	}
}

// Done is closed when the current (or last) loop has drained. It is already
// closed when no loop was ever started.
func (c *Controller) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Wait blocks until the loop drains or ctx ends, whichever comes first
func (c *Controller) Wait(ctx context.Context) error {
	select {
	case <-c.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Status returns the current loop state
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := Status{
		State:        c.state,
		Iterations:   c.engine.Iterations(),
		TrackedItems: c.engine.Store().Len(),
	}
	if c.lastResult != nil {
		r := *c.lastResult
		st.LastIterationAt = r.StartedAt.Add(r.Duration)
		st.LastResult = &r
	}
	return st
}

// Running reports whether a loop is active, including one that is draining
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateRunning || c.state == StateStopRequested
}

func (c *Controller) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer func() {
		c.mu.Lock()
		c.state = StateDrained
		// under the lock so a following Start cannot be overwritten
		metrics.LoopRunning.Set(0)
		c.mu.Unlock()
		logger.Info(LogMsgLoopDrained, "iterations", c.engine.Iterations())
		close(done)
	}()

	for {
		result := c.engine.RunIteration(ctx)

		c.mu.Lock()
		c.lastResult = &result
		c.mu.Unlock()

		select {
		case <-stop:
			return
		default:
		}

		timer := time.NewTimer(c.delay)
		select {
		case <-stop:
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
