package cooldown

import "time"

const (
	// DefaultItemCooldown is the minimum spacing between two price changes of one listing
	DefaultItemCooldown = 9 * time.Second
)

const (
	// ErrFmtOnCooldown formats a listing that was repriced too recently
	ErrFmtOnCooldown = "item %s on cooldown: %s remaining"
)
