// Package policy decides listing prices. Everything here is pure: no network,
// no clock, no shared state.
package policy

import "github.com/osse101/MarketBot_Go/internal/domain"

// Undercut is the amount a competing price is beaten by: the smallest fixed-point unit.
const Undercut int64 = 1

// DecidePrice returns the new price for a listing given the lowest competing price.
//
// The price moves only when floor < lowest <= ceiling, in which case it becomes
// lowest-Undercut. A market at or below the floor, or above the ceiling, leaves
// the price unchanged; the periodic reset is what re-anchors to the ceiling.
func DecidePrice(current, lowest, floor, ceiling int64) int64 {
	if !(floor < lowest && lowest <= ceiling) {
		return current
	}
	return lowest - Undercut
}

// Decision is the result of evaluating one listing.
type Decision struct {
	NewPrice int64
	Outcome  domain.Outcome
	Reason   string
}

// Changed reports whether the decision asks for a remote price change.
func (d Decision) Changed() bool {
	return d.Outcome == domain.OutcomeApply
}

// Evaluate applies DecidePrice plus the guards that sit around it: queue position,
// no-op detection and bound sanity. It never returns a price below the floor.
func Evaluate(item domain.ListedItem, lowest int64) Decision {
	if item.QueuePosition <= 1 {
		return Decision{NewPrice: item.Price, Outcome: domain.OutcomePass, Reason: ReasonFirstInQueue}
	}

	newPrice := DecidePrice(item.Price, lowest, item.FloorPrice, item.CeilingPrice)
	return check(item, newPrice)
}

// EvaluateReset decides the periodic re-anchor of a listing to its ceiling.
func EvaluateReset(item domain.ListedItem) Decision {
	return check(item, item.CeilingPrice)
}

func check(item domain.ListedItem, newPrice int64) Decision {
	switch {
	case item.CeilingPrice < item.FloorPrice:
		return Decision{NewPrice: item.Price, Outcome: domain.OutcomePolicyViolation, Reason: ReasonCeilingBelowFloor}
	case newPrice == item.Price:
		return Decision{NewPrice: item.Price, Outcome: domain.OutcomePass, Reason: ReasonUnchanged}
	case newPrice < item.FloorPrice:
		return Decision{NewPrice: item.Price, Outcome: domain.OutcomePolicyViolation, Reason: ReasonBelowFloor}
	}
	return Decision{NewPrice: newPrice, Outcome: domain.OutcomeApply}
}
