package loader

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Sentinels for the kinds of user-facing load failures.
var (
	ErrParse              = errors.New("malformed definition")
	ErrMissingClass       = errors.New("widget class not specified")
	ErrUnknownClass       = errors.New("unknown widget class")
	ErrTypeCoercion       = errors.New("invalid field value")
	ErrRootMissing        = errors.New("root widget not found")
	ErrRootConflict       = errors.New("more than one root widget")
	ErrParentNotFound     = errors.New("parent widget not found")
	ErrParentNotContainer = errors.New("parent widget is not a container")
	ErrParentCycle        = errors.New("parent references form a cycle")
)

// Error is a failure caused by the content of a definition.
type Error struct {
	// Kind is one of the Err* sentinels.
	Kind error
	// Message is the stable, user-facing description.
	Message string
	// Subject is the source range the problem was found at, if known.
	Subject *hcl.Range
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the error's Kind.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Diagnostic converts the error for rendering with hcl's diagnostic writers.
func (e *Error) Diagnostic() *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  e.Message,
		Subject:  e.Subject,
	}
}

func newError(kind error, subject hcl.Range, format string, args ...any) *Error {
	e := &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
	if subject != (hcl.Range{}) {
		e.Subject = subject.Ptr()
	}
	return e
}
