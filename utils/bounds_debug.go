//go:build boundscheck

package utils

// Debug builds (-tags boundscheck) validate every multi-index before it is flattened.
const boundsCheck = true
