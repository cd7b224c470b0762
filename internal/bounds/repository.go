// Package bounds persists the floor and ceiling prices users set per item.
package bounds

import (
	"context"
	"sync"

	"github.com/osse101/MarketBot_Go/internal/domain"
)

// Repository is the durable bound store, keyed by item id
type Repository interface {
	// LoadBounds returns the stored bounds for the given ids. Ids without
	// stored bounds are absent from the result.
	LoadBounds(ctx context.Context, itemIDs []string) (map[string]domain.PriceBounds, error)
	// SaveBounds inserts or replaces the bounds for one item
	SaveBounds(ctx context.Context, b domain.PriceBounds) error
}

// MemoryRepository keeps bounds in process memory. Used when no database is configured.
type MemoryRepository struct {
	mu     sync.RWMutex
	bounds map[string]domain.PriceBounds
}

// NewMemoryRepository creates an empty in-memory store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bounds: make(map[string]domain.PriceBounds)}
}

func (r *MemoryRepository) LoadBounds(ctx context.Context, itemIDs []string) (map[string]domain.PriceBounds, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.PriceBounds, len(itemIDs))
	for _, id := range itemIDs {
		if b, ok := r.bounds[id]; ok {
			out[id] = b
		}
	}
	return out, nil
}

func (r *MemoryRepository) SaveBounds(ctx context.Context, b domain.PriceBounds) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bounds[b.ItemID] = b
	return nil
}
