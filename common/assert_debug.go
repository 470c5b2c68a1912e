//go:build debug

package common

import "fmt"

// AssertionsEnabled reports whether Assert checks its condition in this build.
const AssertionsEnabled = true

// Assert panics with msg when cond is false.
// Assertions are compiled in only for builds tagged debug.
//
// Parameters:
//   - cond: the condition that must hold
//   - msg: description of the violated invariant
func Assert(cond bool, msg string) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: %s", msg))
	}
}
