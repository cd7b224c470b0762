package listing

import (
	"fmt"
	"sync"
	"time"

	"github.com/osse101/MarketBot_Go/internal/domain"
)

// Store holds the tracked listings. The reconciliation loop is the only writer;
// everyone else reads through Snapshot, which returns a copy.
type Store struct {
	mu    sync.RWMutex
	items []domain.ListedItem
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Merge reconciles a freshly fetched snapshot into the store, see Merge.
func (s *Store) Merge(fresh []domain.ListedItem) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = Merge(s.items, fresh)
	return len(s.items)
}

// Snapshot returns a copy of the tracked listings, safe to hold and read concurrently.
func (s *Store) Snapshot() []domain.ListedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ListedItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of tracked listings
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns a copy of one listing
func (s *Store) Get(id string) (domain.ListedItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return domain.ListedItem{}, false
}

// IDs returns the ids of all tracked listings in store order
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.items))
	for _, item := range s.items {
		ids = append(ids, item.ID)
	}
	return ids
}

// OverlayBounds copies persisted floor/ceiling onto tracked listings.
// Listings without a row keep their current bounds. Returns how many were updated.
func (s *Store) OverlayBounds(bounds map[string]domain.PriceBounds) int {
	if len(bounds) == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := 0
	for i := range s.items {
		b, ok := bounds[s.items[i].ID]
		if !ok {
			continue
		}
		s.items[i].FloorPrice = b.FloorPrice
		s.items[i].CeilingPrice = b.CeilingPrice
		updated++
	}
	return updated
}

// Commit records a successfully applied price.
func (s *Store) Commit(id string, price int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	s.items[i].Price = price
	s.items[i].LastAppliedAt = at
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
