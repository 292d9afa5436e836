// Package contract flags structural precondition violations, such as
// releasing a pooled entity twice or updating a closed simulation. Checks
// only fire when built with the simdebug tag; release builds compile them
// to nothing.
package contract

import "fmt"

// Require panics with the formatted message when cond is false and
// contract checks are enabled.
func Require(cond bool, format string, args ...any) {
	if !Enabled || cond {
		return
	}
	panic("contract violation: " + fmt.Sprintf(format, args...))
}
