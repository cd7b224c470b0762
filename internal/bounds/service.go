package bounds

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MarketBot_Go/internal/domain"
	"github.com/osse101/MarketBot_Go/internal/logger"
)

// Service reads and writes user bounds on top of a Repository
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a bounds service
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Load returns the bounds for itemIDs. A store failure is logged and yields
// nil, which callers treat as "nothing to overlay".
func (s *Service) Load(ctx context.Context, itemIDs []string) map[string]domain.PriceBounds {
	if len(itemIDs) == 0 {
		return nil
	}

	found, err := s.repo.LoadBounds(ctx, itemIDs)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgLoadFailed, "items", len(itemIDs), "error", err)
		return nil
	}
	logger.FromContext(ctx).Debug(LogMsgBoundsLoaded, "requested", len(itemIDs), "found", len(found))
	return found
}

// Save validates and persists bounds for one item. A ceiling below the floor
// is accepted here; the policy reports it as a user input error.
func (s *Service) Save(ctx context.Context, b domain.PriceBounds) (domain.PriceBounds, error) {
	if b.ItemID == "" {
		return domain.PriceBounds{}, fmt.Errorf("%w: %s", domain.ErrInvalidBounds, ErrMsgMissingItemID)
	}
	if b.FloorPrice < 0 || b.CeilingPrice < 0 {
		return domain.PriceBounds{}, fmt.Errorf("%w: %s", domain.ErrInvalidBounds, ErrMsgNegativeBounds)
	}

	b.UpdatedAt = s.now().UTC()
	if err := s.repo.SaveBounds(ctx, b); err != nil {
		return domain.PriceBounds{}, fmt.Errorf("%w: %s: %v", domain.ErrBoundsStore, ErrMsgSaveFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgBoundsSaved,
		"item_id", b.ItemID,
		"floor", domain.FormatPrice(b.FloorPrice),
		"ceiling", domain.FormatPrice(b.CeilingPrice))
	return b, nil
}
