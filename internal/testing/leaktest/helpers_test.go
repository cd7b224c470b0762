package leaktest

import (
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {})
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() {
		time.Sleep(30 * time.Millisecond)
	}()

	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() { <-done }()

	checker.Check(1)
	close(done)
}
