//go:build !boundscheck

package utils

const boundsCheck = false
