package domain

import (
	"errors"
	"strings"
)

// Kind classifies failures so that inbound adapters can map them onto
// their own status codes.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation_failed"
	default:
		return "internal"
	}
}

var (
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated, Message: "actor identity required"}
	ErrForbidden       = &Error{Kind: KindForbidden, Message: "forbidden"}
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "resource not found"}
	ErrValidation      = &Error{Kind: KindValidation, Message: "validation failed"}
)

// Error is a classified failure raised by the campaign core.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	// Fields lists individual validation problems.
	Fields []string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if len(e.Fields) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Fields, "; "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// works for every not-found failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// NotFound builds a not-found error for op.
func NotFound(op, message string) error {
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

// Forbidden builds a forbidden error for op.
func Forbidden(op, message string) error {
	return &Error{Kind: KindForbidden, Op: op, Message: message}
}

// Validation builds a validation error carrying one or more field problems.
func Validation(op string, fields ...string) error {
	return &Error{Kind: KindValidation, Op: op, Message: "validation failed", Fields: fields}
}

// Unauthenticated builds an error for a missing actor identity.
func Unauthenticated(op string) error {
	return &Error{Kind: KindUnauthenticated, Op: op, Message: "actor identity required"}
}

// Internal wraps an unexpected failure from a collaborator.
func Internal(op string, err error) error {
	return &Error{Kind: KindInternal, Op: op, Message: "internal error", Err: err}
}
