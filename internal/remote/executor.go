// Package remote performs outbound GET calls with the retry, timeout and rate
// governing rules shared by the marketplace client and notification backends.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/osse101/MarketBot_Go/internal/logger"
	"github.com/osse101/MarketBot_Go/internal/metrics"
)

// HTTPDoer performs one HTTP round trip. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Failure kinds. Callers usually only log these; a failed call degrades to a sentinel.
var (
	ErrTransport   = errors.New(ErrMsgTransport)
	ErrApplication = errors.New(ErrMsgApplication)
)

// DecodeFunc validates and parses one response body. Any error it returns is
// treated as an application-level failure.
type DecodeFunc func(body []byte) error

// Config controls retry and pacing
type Config struct {
	// MaxAttempts bounds the attempts per call, including the first one
	MaxAttempts int
	// RequestTimeout bounds each attempt
	RequestTimeout time.Duration
	// RequestSpacing is the minimum time between the starts of two requests
	RequestSpacing time.Duration
	// RetryBackoff is slept after a transport failure before the next attempt
	RetryBackoff time.Duration
}

// Executor runs calls against one remote API. It is safe for concurrent use;
// all callers share one limiter so spacing holds across goroutines.
type Executor struct {
	doer    HTTPDoer
	cfg     Config
	limiter *rate.Limiter
}

// NewExecutor creates an executor, filling unset config with defaults.
func NewExecutor(doer HTTPDoer, cfg Config) *Executor {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.RetryBackoff < 0 {
		cfg.RetryBackoff = 0
	}

	limit := rate.Inf
	if cfg.RequestSpacing > 0 {
		limit = rate.Every(cfg.RequestSpacing)
	}

	return &Executor{
		doer:    doer,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Config returns the effective configuration
func (e *Executor) Config() Config {
	return e.cfg
}

// Get issues a GET to rawURL and feeds the body to decode, retrying per Config.
// op names the call in logs and metrics. The returned error wraps ErrTransport
// or ErrApplication from the last attempt.
func (e *Executor) Get(ctx context.Context, op, rawURL string, decode DecodeFunc) error {
	log := logger.FromContext(ctx)

	policy := &retryPolicy{backoff: e.cfg.RetryBackoff}
	var b backoff.BackOff = backoff.WithMaxRetries(policy, uint64(e.cfg.MaxAttempts-1))
	b = backoff.WithContext(b, ctx)

	attempt := 0
	operation := func() error {
		attempt++
		err := e.attempt(ctx, op, rawURL, decode)
		policy.lastTransport = errors.Is(err, ErrTransport)
		return err
	}

	notify := func(err error, wait time.Duration) {
		log.Warn(LogMsgAttemptFailed,
			"operation", op,
			"attempt", attempt,
			"max_attempts", e.cfg.MaxAttempts,
			"retry_in", wait,
			"error", err)
	}

	err := backoff.RetryNotify(operation, b, notify)
	if err != nil {
		metrics.RemoteCallsExhausted.WithLabelValues(op).Inc()
		log.Error(LogMsgCallExhausted, "operation", op, "attempts", attempt, "error", err)
		return err
	}
	return nil
}

func (e *Executor) attempt(ctx context.Context, op, rawURL string, decode DecodeFunc) error {
	if err := e.limiter.Wait(ctx); err != nil {
		return backoff.Permanent(fmt.Errorf("%w: %v", ErrTransport, err))
	}

	attemptCtx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("%w: %s: %v", ErrApplication, ErrMsgBuildRequest, err))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := e.doer.Do(req)
	if err != nil {
		metrics.RemoteRequestsTotal.WithLabelValues(op, metrics.ResultTransportError).Inc()
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	metrics.RemoteRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RemoteRequestsTotal.WithLabelValues(op, metrics.ResultTransportError).Inc()
		return fmt.Errorf("%w: %s: %v", ErrTransport, ErrMsgReadBody, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RemoteRequestsTotal.WithLabelValues(op, metrics.ResultAppError).Inc()
		return fmt.Errorf("%w: status %d", ErrApplication, resp.StatusCode)
	}

	if err := decode(body); err != nil {
		metrics.RemoteRequestsTotal.WithLabelValues(op, metrics.ResultAppError).Inc()
		return fmt.Errorf("%w: %v", ErrApplication, err)
	}

	metrics.RemoteRequestsTotal.WithLabelValues(op, metrics.ResultOK).Inc()
	return nil
}

// retryPolicy waits RetryBackoff only after transport failures. Application
// failures retry immediately; the limiter still spaces the next request.
type retryPolicy struct {
	backoff       time.Duration
	lastTransport bool
}

func (p *retryPolicy) NextBackOff() time.Duration {
	if p.lastTransport {
		return p.backoff
	}
	return 0
}

func (p *retryPolicy) Reset() {
	p.lastTransport = false
}
