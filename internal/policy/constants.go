package policy

// Decision reasons, used in PASS / POLICY log lines
const (
	ReasonFirstInQueue      = "already first in queue or not listed"
	ReasonUnchanged         = "price unchanged"
	ReasonBelowFloor        = "policy error: new price below floor"
	ReasonCeilingBelowFloor = "user input error: ceiling below floor"
)
