package cooldown

import (
	"fmt"
	"time"
)

// Gate decides whether a listing was repriced too recently to touch again.
type Gate struct {
	// Duration is the minimum time between two price changes of one listing
	Duration time.Duration

	// DevMode bypasses all cooldowns when true
	DevMode bool
}

// NewGate creates a gate; a non-positive duration falls back to DefaultItemCooldown.
func NewGate(duration time.Duration, devMode bool) Gate {
	if duration <= 0 {
		duration = DefaultItemCooldown
	}
	return Gate{Duration: duration, DevMode: devMode}
}

// Check reports whether lastAppliedAt is still within the window at now.
// A zero lastAppliedAt means the listing was never repriced.
func (g Gate) Check(now, lastAppliedAt time.Time) (bool, time.Duration) {
	if g.DevMode || lastAppliedAt.IsZero() {
		return false, 0
	}

	elapsed := now.Sub(lastAppliedAt)
	if elapsed < g.Duration {
		return true, g.Duration - elapsed
	}
	return false, 0
}

// ErrOnCooldown describes a skipped listing
type ErrOnCooldown struct {
	ItemID    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	return fmt.Sprintf(ErrFmtOnCooldown, e.ItemID, e.Remaining.Round(time.Millisecond))
}
