package assert

import (
	"fmt"
	"runtime/debug"
)

// Assert panics with the current stack when condition does not hold. It guards
// internal invariants only; malformed input is reported through errors.
func Assert(condition bool) {
	if !condition {
		s := debug.Stack()

		panic("assertion failed:\n" + string(s))
	}
}

// Assertf is Assert with a formatted description of the broken invariant.
func Assertf(condition bool, format string, args ...any) {
	if !condition {
		s := debug.Stack()

		panic("assertion failed: " + fmt.Sprintf(format, args...) + "\n" + string(s))
	}
}
