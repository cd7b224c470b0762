// Package leaktest checks that tests do not leave goroutines behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTimeout bounds how long Check waits for goroutines to exit
const DefaultSettleTimeout = time.Second

// GoroutineChecker records the goroutine count at creation and compares later
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test if, after up to DefaultSettleTimeout, more than
// tolerance goroutines remain above the recorded count.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(DefaultSettleTimeout)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
		runtime.Gosched()
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and checks it left no goroutines running
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
