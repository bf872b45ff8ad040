package errorvalues

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrStorage         = errors.New("storage error")

	ErrPartNotFound  = fmt.Errorf("part %w", ErrNotFound)
	ErrEventNotFound = fmt.Errorf("eating record %w", ErrNotFound)

	// Returned by repositories when a user has no saved state yet
	ErrStateNotFound = errors.New("progress state doesn't exist")

	ErrConciergeUnavailable = errors.New("concierge is not configured")
)
