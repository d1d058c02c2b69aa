package api

import "fmt"

// Kind classifies client failures. The sync engine degrades silently on all
// of them by policy, but logs the kind so a deliberately ignored error is
// distinguishable from an unhandled one.
type Kind int

const (
	// KindUnavailable means the request never produced a response
	// (connection refused, timeout, DNS).
	KindUnavailable Kind = iota
	// KindStatus means the server answered with a non-2xx status.
	KindStatus
	// KindDecode means the response body did not match the expected shape.
	KindDecode
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all Client methods.
type Error struct {
	Kind Kind
	Op   string // logical operation, e.g. "current-practice-state"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("api %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from an error returned by this package.
// Returns KindUnavailable for foreign errors.
func KindOf(err error) Kind {
	if apiErr, ok := err.(*Error); ok {
		return apiErr.Kind
	}
	return KindUnavailable
}
