package postgres

// Error messages
const (
	ErrMsgQueryBounds = "failed to query price bounds"
	ErrMsgScanBounds  = "failed to scan price bounds"
	ErrMsgUpsertBound = "failed to upsert price bounds"
)
