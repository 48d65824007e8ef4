package common

import (
	"errors"
	"fmt"
)

// The four failure kinds every operation reports, plus internal failures.
// Callers should match them with errors.Is; more specific errors below wrap
// exactly one of them.
var (
	ErrUnauthenticated = errors.New("authentication credentials were not provided")
	ErrForbidden       = errors.New("you do not have permission to perform this action")
	ErrorNotFound      = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")

	ErrorInternal = errors.New("internal error")
)

var (
	// Session errors.
	ErrInvalidToken       = wrapKind(ErrUnauthenticated, "invalid token")
	ErrMissingToken       = wrapKind(ErrUnauthenticated, "authentication credentials were not provided")
	ErrInvalidCredentials = wrapKind(ErrBadRequest, "unable to log in with provided credentials")

	// Registration and password errors.
	ErrUsernameTaken     = wrapKind(ErrBadRequest, "a user with that username already exists")
	ErrEmailTaken        = wrapKind(ErrBadRequest, "a user with that email already exists")
	ErrWeakPassword      = wrapKind(ErrBadRequest, "password does not meet the policy")
	ErrInvalidResetToken = wrapKind(ErrBadRequest, "invalid or expired password reset link")

	// Authorization errors.
	ErrProtectedField = wrapKind(ErrForbidden, "owner and beloved ones cannot be changed through update")
	ErrMissingParent  = wrapKind(ErrBadRequest, "referenced parent does not exist")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func wrapKind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// BadRequestf builds a BadRequest error with a formatted message.
func BadRequestf(format string, args ...any) error {
	return wrapKind(ErrBadRequest, fmt.Sprintf(format, args...))
}

// ValidationError reports a single invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrBadRequest }

// Kind classifies an error for transports.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

// KindOf maps err onto one of the failure kinds. Unknown errors are internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrorNotFound):
		return KindNotFound
	case errors.Is(err, ErrBadRequest):
		return KindBadRequest
	default:
		return KindInternal
	}
}
