package reconcile

import "time"

// Defaults
const (
	DefaultResetEvery        = 100
	DefaultLoopDelay         = time.Second
	DefaultNotifiedCacheSize = 1024
	DefaultNotifiedTTL       = 24 * time.Hour
)

// Iteration kinds, used as metric labels
const (
	KindNormal = "normal"
	KindReset  = "reset"
)

// Reasons for outcomes decided by the loop rather than the policy
const (
	ReasonBoundsNotSet    = "bounds not set"
	ReasonNoLowestPrice   = "could not get lowest price for item"
	ReasonApplyRejected   = "price update rejected"
	ReasonItemDisappeared = "item left local state"
	ReasonResetToCeiling  = "reset to ceiling"
	ReasonUndercut        = "undercut lowest price"
)

// Log messages
const (
	LogMsgIterationStarted  = "Reconciliation iteration started"
	LogMsgIterationFinished = "Reconciliation iteration finished"
	LogMsgOutcome           = "Reprice outcome"
	LogMsgPendingSale       = "New pending sale"
	LogMsgPendingNotSent    = "Pending sale notice not queued, retrying next iteration"
	LogMsgLoopStarted       = "Price update loop started"
	LogMsgStopRequested     = "Price update loop stop requested"
	LogMsgLoopDrained       = "Price update loop drained"
	LogMsgBoundsOverlaid    = "Price bounds overlaid"
)
