package remote

import "time"

// Defaults
const (
	DefaultMaxAttempts    = 3
	DefaultRequestTimeout = 10 * time.Second
	DefaultRequestSpacing = 300 * time.Millisecond
	DefaultRetryBackoff   = 2 * time.Second

	// MaxResponseBytes caps how much of a response body is read
	MaxResponseBytes = 8 << 20
)

// Error messages
const (
	ErrMsgTransport    = "transport failure"
	ErrMsgApplication  = "application failure"
	ErrMsgBuildRequest = "failed to build request"
	ErrMsgReadBody     = "failed to read response body"
)

// Log messages
const (
	LogMsgAttemptFailed = "Remote call attempt failed"
	LogMsgCallExhausted = "Remote call failed after all attempts"
)
