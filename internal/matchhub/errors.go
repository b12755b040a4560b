package matchhub

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed call so that callers can decide how to degrade:
// show a banner, fall back to an empty state, or drop the session.
type Kind int

const (
	// KindValidation is detected client-side; the request never reaches
	// the network.
	KindValidation Kind = iota + 1
	// KindAuthRejected means the credential is missing, malformed or
	// expired.
	KindAuthRejected
	// KindNotFound means the requested resource does not exist.
	KindNotFound
	// KindServer covers every other backend or transport failure.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthRejected:
		return "auth_rejected"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is the normalized failure returned by every Client call.
type Error struct {
	Kind Kind
	// Status is the HTTP status when the backend answered, 0 otherwise.
	Status int
	// Message is the backend-supplied human-readable reason, may be empty.
	Message string

	cause error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s: status %d", e.Kind, e.Status)
	case e.cause != nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.cause)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.cause }

func newValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func newStatusError(status int, msg string) *Error {
	return &Error{Kind: kindFromStatus(status), Status: status, Message: msg}
}

func wrapTransport(err error) *Error {
	return &Error{Kind: KindServer, cause: err}
}

func kindFromStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuthRejected
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindServer
	}
}

// IsKind reports whether err is a matchhub error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

func IsValidation(err error) bool   { return IsKind(err, KindValidation) }
func IsAuthRejected(err error) bool { return IsKind(err, KindAuthRejected) }
func IsNotFound(err error) bool     { return IsKind(err, KindNotFound) }

// UserMessage extracts the backend-supplied reason from err, falling back
// to the provided generic message.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
