package domain

// Outcome classifies what happened to one item during one iteration.
type Outcome string

// Per-item outcomes
const (
	OutcomePass            Outcome = "PASS"   // no change needed
	OutcomeApply           Outcome = "APPLY"  // policy chose a new price, not yet sent
	OutcomeOK              Outcome = "OK"     // new price applied remotely
	OutcomeFail            Outcome = "FAIL"   // attempted and rejected, or data missing
	OutcomePolicyViolation Outcome = "POLICY" // computed price or user input breaks the bounds
)
