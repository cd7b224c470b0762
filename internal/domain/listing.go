package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ListedItem is one marketplace listing tracked by the bot.
// Prices are fixed point with PriceScale implied decimals.
type ListedItem struct {
	ID            string     `json:"id"`
	HashName      string     `json:"hash_name"`
	Price         int64      `json:"price"`
	Currency      string     `json:"currency"`
	QueuePosition int        `json:"queue_position"`
	Status        ItemStatus `json:"status"`

	// User bounds; 0 means unset.
	FloorPrice   int64 `json:"floor_price"`
	CeilingPrice int64 `json:"ceiling_price"`

	LastAppliedAt time.Time `json:"last_applied_at"`
}

// HasBounds reports whether both user bounds are set, which enables repricing.
func (i ListedItem) HasBounds() bool {
	return i.FloorPrice > 0 && i.CeilingPrice > 0
}

func (i ListedItem) String() string {
	return fmt.Sprintf("id:%s, %s, %s %s, pos:%d, floor:%d, ceiling:%d",
		i.ID, i.HashName, FormatPrice(i.Price), i.Currency, i.QueuePosition, i.FloorPrice, i.CeilingPrice)
}

// PriceBounds is the durable floor/ceiling pair a user entered for one item.
type PriceBounds struct {
	ItemID       string    `json:"item_id"`
	HashName     string    `json:"hash_name,omitempty"`
	FloorPrice   int64     `json:"floor_price"`
	CeilingPrice int64     `json:"ceiling_price"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FormatPrice renders a fixed-point price in currency units, e.g. 1500 -> "1.500".
func FormatPrice(price int64) string {
	return decimal.New(price, -PriceScale).StringFixed(PriceScale)
}

// PriceFromDecimal converts a currency amount to fixed point, rounding half away from zero.
func PriceFromDecimal(d decimal.Decimal) int64 {
	return d.Shift(PriceScale).Round(0).IntPart()
}
