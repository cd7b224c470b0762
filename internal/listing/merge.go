// Package listing owns the in-memory collection of tracked listings and the
// rules for reconciling it with freshly fetched snapshots.
package listing

import "github.com/osse101/MarketBot_Go/internal/domain"

// Merge reconciles a fresh on-sale snapshot with existing local state.
//
// Items found in both keep the fresh price, position and currency but carry
// forward the user bounds and LastAppliedAt from existing. Existing items
// missing from fresh are dropped, unless fresh is empty: an empty fetch is
// indistinguishable from a failed one and must not wipe live state. Items only
// in fresh are appended in fetch order. A repeated id keeps its first
// occurrence. Neither input is modified.
func Merge(existing, fresh []domain.ListedItem) []domain.ListedItem {
	if len(existing) == 0 {
		return dedupe(fresh)
	}
	if len(fresh) == 0 {
		return clone(existing)
	}

	// first occurrence wins when a snapshot repeats an id
	lookup := make(map[string]int, len(fresh))
	for i, item := range fresh {
		if _, dup := lookup[item.ID]; !dup {
			lookup[item.ID] = i
		}
	}

	merged := make([]domain.ListedItem, 0, len(fresh))
	for _, old := range existing {
		idx, ok := lookup[old.ID]
		if !ok {
			continue
		}
		delete(lookup, old.ID)

		item := fresh[idx]
		item.FloorPrice = old.FloorPrice
		item.CeilingPrice = old.CeilingPrice
		item.LastAppliedAt = old.LastAppliedAt
		merged = append(merged, item)
	}

	// leftovers are newly observed listings
	for i, item := range fresh {
		if idx, ok := lookup[item.ID]; ok && idx == i {
			merged = append(merged, item)
		}
	}

	return merged
}

// dedupe copies items, keeping the first occurrence of each id
func dedupe(items []domain.ListedItem) []domain.ListedItem {
	if items == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.ListedItem, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

// HashNames returns the distinct catalog names of items, in first-seen order.
func HashNames(items []domain.ListedItem) []string {
	seen := make(map[string]struct{}, len(items))
	names := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.HashName]; ok {
			continue
		}
		seen[item.HashName] = struct{}{}
		names = append(names, item.HashName)
	}
	return names
}

func clone(items []domain.ListedItem) []domain.ListedItem {
	if items == nil {
		return nil
	}
	out := make([]domain.ListedItem, len(items))
	copy(out, items)
	return out
}
