//go:build !debug

package common

// AssertionsEnabled reports whether Assert checks its condition in this build.
const AssertionsEnabled = false

// Assert does nothing outside debug builds. Callers must not rely on it as validation.
func Assert(cond bool, msg string) {}
