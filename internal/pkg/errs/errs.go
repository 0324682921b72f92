// Package errs defines the error taxonomy crossing the API boundary.
// Handlers map kinds to HTTP codes; messages stay human-readable and never
// carry internal identifiers or upstream credentials.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the caller's benefit.
type Kind int

const (
	// KindInternal is anything unclassified; surfaced as a generic 500.
	KindInternal Kind = iota
	// KindUnauthorized covers invalid or ineligible credentials.
	KindUnauthorized
	// KindForbidden covers authenticated callers acting outside their merchant scope.
	KindForbidden
	// KindValidation covers client-caused bad requests.
	KindValidation
	// KindAdmission covers policy rejections such as the daily limit;
	// distinct from validation so callers can retry later.
	KindAdmission
	// KindNotFound covers lookups of entities the caller may know about.
	KindNotFound
)

// Error is a classified business error.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

// Unauthorized builds a KindUnauthorized error.
func Unauthorized(format string, args ...interface{}) error {
	return &Error{Kind: KindUnauthorized, Reason: fmt.Sprintf(format, args...)}
}

// Forbidden builds a KindForbidden error.
func Forbidden(format string, args ...interface{}) error {
	return &Error{Kind: KindForbidden, Reason: fmt.Sprintf(format, args...)}
}

// Validation builds a KindValidation error.
func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Reason: fmt.Sprintf(format, args...)}
}

// Admission builds a KindAdmission error.
func Admission(format string, args ...interface{}) error {
	return &Error{Kind: KindAdmission, Reason: fmt.Sprintf(format, args...)}
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Reason: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, unwrapping as needed.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
