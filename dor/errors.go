package dor

import (
	"errors"
	"fmt"
)

// Kind classifies every error returned by the resource clients.
type Kind int

const (
	// KindUnknown is reported for errors that did not originate in this package,
	// such as transport failures.
	KindUnknown Kind = iota
	// KindConfiguration means an operation ran before a base URL was configured.
	KindConfiguration
	// KindNotFound means the service answered 404.
	KindNotFound
	// KindUnexpectedResponse means any other non-2xx answer.
	KindUnexpectedResponse
	// KindMalformedResponse means a 2xx body could not be parsed.
	KindMalformedResponse
	// KindConflict refines KindUnexpectedResponse for 409 answers.
	KindConflict
	// KindInvalidArgument means an argument was rejected before any request was made.
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindNotFound:
		return "not_found"
	case KindUnexpectedResponse:
		return "unexpected_response"
	case KindMalformedResponse:
		return "malformed_response"
	case KindConflict:
		return "conflict"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against an *Error of the corresponding kind.
var (
	ErrConfiguration      = errors.New("dor-services client is not configured")
	ErrNotFound           = errors.New("resource not found")
	ErrUnexpectedResponse = errors.New("unexpected response from dor-services-app")
	ErrMalformedResponse  = errors.New("malformed response from dor-services-app")
	ErrConflict           = errors.New("conflicting request")
	ErrInvalidArgument    = errors.New("invalid argument")
)

// Error is the error type returned by every resource client.
type Error struct {
	Kind Kind
	// Message is the formatted text, without the object identifier suffix.
	Message    string
	StatusCode int
	// Body is the raw response body, kept for diagnosis.
	Body             string
	ObjectIdentifier string
	Err              error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.ObjectIdentifier != "" {
		return fmt.Sprintf("%s for %s", e.Message, e.ObjectIdentifier)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the package sentinels. A conflict also matches
// ErrUnexpectedResponse.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrUnexpectedResponse:
		return e.Kind == KindUnexpectedResponse || e.Kind == KindConflict
	case ErrMalformedResponse:
		return e.Kind == KindMalformedResponse
	case ErrConflict:
		return e.Kind == KindConflict
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	}
	return false
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// KindOf returns the Kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func configurationError(msg string) *Error {
	return &Error{Kind: KindConfiguration, Message: msg}
}

func invalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}
