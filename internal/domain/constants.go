package domain

// PriceScale is the number of implied decimal digits in fixed-point prices (1500 = 1.500).
const PriceScale = 3

// PriceUnit is the fixed-point value of one currency unit.
const PriceUnit int64 = 1000

// DefaultCurrency is used for set-price calls when none is configured.
const DefaultCurrency = "USD"

// ItemStatus is the marketplace status code of a listing.
type ItemStatus int

// Marketplace listing status codes
const (
	StatusOnSale           ItemStatus = 1 // actively listed, eligible for repricing
	StatusNeedsTransfer    ItemStatus = 2 // sold, seller must hand the item over
	StatusAwaitingTransfer ItemStatus = 3
	StatusReadyToReceive   ItemStatus = 4
)

// String returns a readable status name
func (s ItemStatus) String() string {
	switch s {
	case StatusOnSale:
		return "on_sale"
	case StatusNeedsTransfer:
		return "needs_transfer"
	case StatusAwaitingTransfer:
		return "awaiting_transfer"
	case StatusReadyToReceive:
		return "ready_to_receive"
	default:
		return "unknown"
	}
}
