// jamf/errors.go
package jamf

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a malformed or out-of-range argument, detected
// locally before any network call is made.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound marks a single-entity lookup the server answered with 404.
// List endpoints return empty results instead of this error.
var ErrNotFound = errors.New("not found")

// invalidArgf wraps ErrInvalidArgument with detail.
func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// InvalidArgumentf builds a validation error for callers layered above this
// package, keeping the single ErrInvalidArgument sentinel.
func InvalidArgumentf(format string, args ...any) error {
	return invalidArgf(format, args...)
}

// IsInvalidArgument reports whether err is a local validation failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsNotFound reports whether err is a missing-resource lookup failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
