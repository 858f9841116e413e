package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks malformed input to a pure function. It is a
	// caller bug and is never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrProvider marks a failure reported by an external service.
	ErrProvider = errors.New("provider error")

	// ErrRouteUnavailable is returned when every segment of a tour failed.
	ErrRouteUnavailable = errors.New("route unavailable")
)

// ProviderError carries the status and info message an external service
// returned, or the transport error that prevented a response.
type ProviderError struct {
	Op     string
	Status string
	Info   string
	Err    error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Err != nil && e.Info != "":
		return fmt.Sprintf("%s: provider status=%q info=%q: %v", e.Op, e.Status, e.Info, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: provider: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: provider status=%q info=%q", e.Op, e.Status, e.Info)
	}
}

func (e *ProviderError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrProvider, e.Err}
	}
	return []error{ErrProvider}
}

// InvalidArgument wraps ErrInvalidArgument with a formatted detail.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
