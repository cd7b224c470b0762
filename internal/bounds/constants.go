package bounds

// Error messages
const (
	ErrMsgMissingItemID  = "item id is required"
	ErrMsgNegativeBounds = "floor and ceiling must not be negative"
	ErrMsgLoadFailed     = "failed to load price bounds"
	ErrMsgSaveFailed     = "failed to save price bounds"
)

// Log messages
const (
	LogMsgLoadFailed   = "Could not load price bounds, continuing without overlay"
	LogMsgBoundsSaved  = "Price bounds saved"
	LogMsgBoundsLoaded = "Price bounds loaded"
)
