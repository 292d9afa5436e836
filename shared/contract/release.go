//go:build !simdebug

package contract

// Enabled reports whether contract checks are compiled in.
const Enabled = false
