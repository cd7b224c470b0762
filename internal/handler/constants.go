package handler

import "time"

// ReadinessTimeout bounds the database ping in /readyz
const ReadinessTimeout = 2 * time.Second

// URL parameters
const (
	ParamItemID = "id"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// User-facing messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request. Please check your inputs."
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgInvalidBoundsError    = "Invalid price bounds"
	ErrMsgAlreadyRunningError   = "Price update loop is already running"
	ErrMsgNotRunningError       = "Price update loop is not running"
	ErrMsgBoundsStoreError      = "Could not save price bounds. Please try again."
	ErrMsgDatabaseUnavailable   = "database connection failed"

	MsgLoopStarting  = "Price update loop started"
	MsgLoopStopping  = "Stopping price update loop..."
	MsgBoundsUpdated = "Price bounds saved, applied on the next iteration"
)

// Log messages
const (
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgValidationFailed = "Request validation failed"
)
