// Package postgres holds the PostgreSQL repositories.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/MarketBot_Go/internal/domain"
)

// DB is the subset of *pgxpool.Pool used by the repositories
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// BoundsRepository stores user price bounds in item_price_bounds
type BoundsRepository struct {
	db DB
}

// NewBoundsRepository creates a new bounds repository
func NewBoundsRepository(db DB) *BoundsRepository {
	return &BoundsRepository{db: db}
}

// LoadBounds returns the stored bounds for itemIDs
func (r *BoundsRepository) LoadBounds(ctx context.Context, itemIDs []string) (map[string]domain.PriceBounds, error) {
	out := make(map[string]domain.PriceBounds, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT item_id, hash_name, floor_price, ceiling_price, updated_at
		FROM item_price_bounds
		WHERE item_id = ANY($1)
	`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryBounds, err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.PriceBounds
		if err := rows.Scan(&b.ItemID, &b.HashName, &b.FloorPrice, &b.CeilingPrice, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanBounds, err)
		}
		out[b.ItemID] = b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryBounds, err)
	}
	return out, nil
}

// SaveBounds inserts or replaces the bounds for one item. An empty hash name
// keeps the one already stored.
func (r *BoundsRepository) SaveBounds(ctx context.Context, b domain.PriceBounds) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO item_price_bounds (item_id, hash_name, floor_price, ceiling_price, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_id) DO UPDATE SET
			hash_name = COALESCE(NULLIF(EXCLUDED.hash_name, ''), item_price_bounds.hash_name),
			floor_price = EXCLUDED.floor_price,
			ceiling_price = EXCLUDED.ceiling_price,
			updated_at = EXCLUDED.updated_at
	`, b.ItemID, b.HashName, b.FloorPrice, b.CeilingPrice, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpsertBound, err)
	}
	return nil
}
