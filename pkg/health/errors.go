package health

import "errors"

var (
	// ErrCheckFailed wraps failures that did not come from the check itself,
	// such as a nil check or a panic.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout wraps errors of checks that ran past the probe timeout.
	ErrCheckTimeout = errors.New("health: check timeout")
)
