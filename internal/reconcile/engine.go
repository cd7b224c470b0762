// Package reconcile runs the repricing loop: refresh listings, merge them with
// local state, overlay user bounds, then undercut or reset prices.
package reconcile

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MarketBot_Go/internal/cooldown"
	"github.com/osse101/MarketBot_Go/internal/domain"
	"github.com/osse101/MarketBot_Go/internal/listing"
	"github.com/osse101/MarketBot_Go/internal/logger"
	"github.com/osse101/MarketBot_Go/internal/metrics"
	"github.com/osse101/MarketBot_Go/internal/notify"
	"github.com/osse101/MarketBot_Go/internal/policy"
)

// Market is the marketplace as seen by the loop. Failures surface as empty
// results, never as errors.
type Market interface {
	FetchListings(ctx context.Context) (onSale, pending []domain.ListedItem)
	ApplyPrice(ctx context.Context, itemID string, price int64) bool
	FetchLowestPrices(ctx context.Context, hashNames []string) map[string]int64
}

// BoundsLoader returns persisted bounds, or nil when the store is unavailable
type BoundsLoader interface {
	Load(ctx context.Context, itemIDs []string) map[string]domain.PriceBounds
}

// Dispatcher queues a notification without waiting for delivery
type Dispatcher interface {
	Dispatch(ctx context.Context, message string) bool
}

// Config tunes the engine
type Config struct {
	Cooldown   time.Duration
	DevMode    bool
	ResetEvery int

	NotifiedCacheSize int
	NotifiedTTL       time.Duration
}

// Engine performs reconciliation iterations. RunIteration must not be called
// concurrently; the Controller guarantees that.
type Engine struct {
	store      *listing.Store
	market     Market
	bounds     BoundsLoader
	dispatcher Dispatcher
	gate       cooldown.Gate
	resetEvery uint64

	// pending sales already notified, keyed by item id
	notified *expirable.LRU[string, struct{}]

	iterations atomic.Uint64
	now        func() time.Time
}

// NewEngine creates an engine over store
func NewEngine(store *listing.Store, market Market, bounds BoundsLoader, dispatcher Dispatcher, cfg Config) *Engine {
	if cfg.ResetEvery <= 0 {
		cfg.ResetEvery = DefaultResetEvery
	}
	if cfg.NotifiedCacheSize <= 0 {
		cfg.NotifiedCacheSize = DefaultNotifiedCacheSize
	}
	if cfg.NotifiedTTL <= 0 {
		cfg.NotifiedTTL = DefaultNotifiedTTL
	}

	return &Engine{
		store:      store,
		market:     market,
		bounds:     bounds,
		dispatcher: dispatcher,
		gate:       cooldown.NewGate(cfg.Cooldown, cfg.DevMode),
		resetEvery: uint64(cfg.ResetEvery),
		notified:   expirable.NewLRU[string, struct{}](cfg.NotifiedCacheSize, nil, cfg.NotifiedTTL),
		now:        time.Now,
	}
}

// Store returns the live collection
func (e *Engine) Store() *listing.Store {
	return e.store
}

// Iterations returns the number of completed iterations
func (e *Engine) Iterations() uint64 {
	return e.iterations.Load()
}

// ItemResult is what happened to one listing in one iteration
type ItemResult struct {
	ItemID   string         `json:"item_id"`
	Outcome  domain.Outcome `json:"outcome"`
	Reason   string         `json:"reason,omitempty"`
	OldPrice int64          `json:"old_price"`
	NewPrice int64          `json:"new_price"`
}

// IterationResult summarizes one iteration
type IterationResult struct {
	Iteration    uint64         `json:"iteration"`
	Kind         string         `json:"kind"`
	Tracked      int            `json:"tracked"`
	NewPending   int            `json:"new_pending"`
	Items        []ItemResult   `json:"items"`
	StartedAt    time.Time      `json:"started_at"`
	Duration     time.Duration  `json:"duration"`
	OutcomeCount map[string]int `json:"outcome_count"`
}

// RunIteration performs one full reconciliation pass. Nothing in it is fatal:
// a failed fetch leaves local state as it was and the next tick tries again.
func (e *Engine) RunIteration(ctx context.Context) IterationResult {
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)
	started := e.now()
	log.Debug(LogMsgIterationStarted)

	onSale, pending := e.market.FetchListings(ctx)
	newPending := e.notifyPending(ctx, pending)

	tracked := e.store.Merge(onSale)
	metrics.TrackedItems.Set(float64(tracked))

	if found := e.bounds.Load(ctx, e.store.IDs()); len(found) > 0 {
		n := e.store.OverlayBounds(found)
		log.Debug(LogMsgBoundsOverlaid, "items", n)
	}

	n := e.iterations.Add(1)
	kind := KindNormal
	var items []ItemResult
	if n%e.resetEvery == 0 {
		kind = KindReset
		items = e.resetPass(ctx)
	} else {
		items = e.repricePass(ctx)
	}

	result := IterationResult{
		Iteration:    n,
		Kind:         kind,
		Tracked:      tracked,
		NewPending:   newPending,
		Items:        items,
		StartedAt:    started,
		Duration:     e.now().Sub(started),
		OutcomeCount: make(map[string]int),
	}
	for _, r := range items {
		result.OutcomeCount[string(r.Outcome)]++
		metrics.RepriceOutcomes.WithLabelValues(kind, string(r.Outcome)).Inc()
	}
	metrics.LoopIterations.WithLabelValues(kind).Inc()
	metrics.LoopDuration.Observe(result.Duration.Seconds())

	log.Info(LogMsgIterationFinished,
		"iteration", n,
		"kind", kind,
		"tracked", tracked,
		"new_pending", newPending,
		"outcomes", result.OutcomeCount,
		"duration", result.Duration)
	return result
}

func (e *Engine) notifyPending(ctx context.Context, pending []domain.ListedItem) int {
	count := 0
	for _, item := range pending {
		if e.notified.Contains(item.ID) {
			continue
		}
		logger.FromContext(ctx).Info(LogMsgPendingSale, "item", item.String())
		// unsent notices are retried on the next iteration
		if !e.dispatcher.Dispatch(ctx, notify.PendingSaleMessage(item)) {
			logger.FromContext(ctx).Warn(LogMsgPendingNotSent, "item_id", item.ID)
			continue
		}
		e.notified.Add(item.ID, struct{}{})
		count++
	}
	return count
}

// eligible filters out listings without bounds or still cooling down
func (e *Engine) eligible(ctx context.Context, items []domain.ListedItem, now time.Time) (ready []domain.ListedItem, skipped []ItemResult) {
	for _, item := range items {
		if !item.HasBounds() {
			skipped = append(skipped, e.record(ctx, item, domain.OutcomePass, ReasonBoundsNotSet, item.Price))
			continue
		}
		if on, remaining := e.gate.Check(now, item.LastAppliedAt); on {
			reason := cooldown.ErrOnCooldown{ItemID: item.ID, Remaining: remaining}.Error()
			skipped = append(skipped, e.record(ctx, item, domain.OutcomePass, reason, item.Price))
			continue
		}
		ready = append(ready, item)
	}
	return ready, skipped
}

func (e *Engine) repricePass(ctx context.Context) []ItemResult {
	ready, results := e.eligible(ctx, e.store.Snapshot(), e.now())

	// one batched lookup for every listing that is not already first
	var behind []domain.ListedItem
	for _, item := range ready {
		if item.QueuePosition > 1 {
			behind = append(behind, item)
		}
	}
	names := listing.HashNames(behind)
	var lowest map[string]int64
	if len(names) > 0 {
		lowest = e.market.FetchLowestPrices(ctx, names)
	}

	for _, item := range ready {
		var d policy.Decision
		if item.QueuePosition <= 1 {
			d = policy.Evaluate(item, 0)
		} else {
			price, ok := lowest[item.HashName]
			if !ok || price <= 0 {
				results = append(results, e.record(ctx, item, domain.OutcomeFail, ReasonNoLowestPrice, item.Price))
				continue
			}
			d = policy.Evaluate(item, price)
		}

		if !d.Changed() {
			results = append(results, e.record(ctx, item, d.Outcome, d.Reason, item.Price))
			continue
		}
		results = append(results, e.apply(ctx, item, d.NewPrice, ReasonUndercut))
	}
	return results
}

func (e *Engine) resetPass(ctx context.Context) []ItemResult {
	ready, results := e.eligible(ctx, e.store.Snapshot(), e.now())
	for _, item := range ready {
		d := policy.EvaluateReset(item)
		if !d.Changed() {
			results = append(results, e.record(ctx, item, d.Outcome, d.Reason, item.Price))
			continue
		}
		results = append(results, e.apply(ctx, item, d.NewPrice, ReasonResetToCeiling))
	}
	return results
}

// apply sends a price change and commits it locally only when the marketplace accepted it
func (e *Engine) apply(ctx context.Context, item domain.ListedItem, price int64, reason string) ItemResult {
	if !e.market.ApplyPrice(ctx, item.ID, price) {
		return e.record(ctx, item, domain.OutcomeFail, ReasonApplyRejected, price)
	}

	if err := e.store.Commit(item.ID, price, e.now()); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return e.record(ctx, item, domain.OutcomeFail, ReasonItemDisappeared, price)
		}
		return e.record(ctx, item, domain.OutcomeFail, err.Error(), price)
	}
	return e.record(ctx, item, domain.OutcomeOK, reason, price)
}

func (e *Engine) record(ctx context.Context, item domain.ListedItem, outcome domain.Outcome, reason string, newPrice int64) ItemResult {
	level := slog.LevelDebug
	switch outcome {
	case domain.OutcomeOK:
		level = slog.LevelInfo
	case domain.OutcomeFail, domain.OutcomePolicyViolation:
		level = slog.LevelWarn
	}
	logger.FromContext(ctx).Log(ctx, level, LogMsgOutcome,
		"outcome", outcome,
		"reason", reason,
		"item", item.String(),
		"new_price", domain.FormatPrice(newPrice))

	return ItemResult{
		ItemID:   item.ID,
		Outcome:  outcome,
		Reason:   reason,
		OldPrice: item.Price,
		NewPrice: newPrice,
	}
}
