package omap

import "errors"

var (
	// ErrInvalidCompare signals a missing comparison function.
	ErrInvalidCompare = errors.New("omap: comparison function is required")
	// ErrInvariantViolation signals a corrupted tree structure. It is only
	// ever produced by the Check validator, never by regular operations.
	ErrInvariantViolation = errors.New("omap: tree invariant violated")
)
