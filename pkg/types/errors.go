package types

import "errors"

// Domain errors for type validation
var (
	// Search result errors
	ErrEmptyPath        = errors.New("result path cannot be empty")
	ErrInvalidScore     = errors.New("score must be between 0 and 1")
	ErrMissingMatchType = errors.New("match type is required")

	// Queue errors
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrNilComparator   = errors.New("comparator is required")
)
