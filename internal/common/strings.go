// Package common holds small helpers shared across packages.
package common

import "strings"

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// IsBlank returns true if s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}
