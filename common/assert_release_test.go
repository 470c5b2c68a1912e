//go:build !debug

package common

import "testing"

func TestAssert(t *testing.T) {
	if AssertionsEnabled {
		t.Fatal("AssertionsEnabled\nhave true\nwant false")
	}
	Assert(false, "ignored outside debug builds")
}
