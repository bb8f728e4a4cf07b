// Package assert provides panic-on-violation checks for programmer errors.
// A failed assertion is a bug in the caller, not a recoverable runtime
// condition.
package assert

import "fmt"

// That panics with a formatted message if the condition is false.
// Usage: assert.That(len(buf) > 0, "buffer must not be empty")
func That(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
