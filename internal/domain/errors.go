package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgItemNotFound     = "item not found"
	ErrMsgInvalidBounds    = "invalid price bounds"
	ErrMsgAlreadyRunning   = "price update loop is already running"
	ErrMsgNotRunning       = "price update loop is not running"
	ErrMsgBoundsStoreError = "bounds store error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrItemNotFound marks an item that left local state between selection and use.
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	ErrInvalidBounds = errors.New(ErrMsgInvalidBounds)

	// Loop control errors
	ErrAlreadyRunning = errors.New(ErrMsgAlreadyRunning)
	ErrNotRunning     = errors.New(ErrMsgNotRunning)

	ErrBoundsStore = errors.New(ErrMsgBoundsStoreError)
)
