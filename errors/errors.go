package errors

import (
	// Go Internal Packages
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error so callers can react without string matching.
type Kind int

const (
	Other Kind = iota
	Invalid
	NotFound
	Internal
	Unavailable
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case NotFound:
		return "not found"
	case Internal:
		return "internal"
	case Unavailable:
		return "unavailable"
	}
	return "other"
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// E wraps err with a kind and a message.
func E(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err, or Other if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}

// IsKind reports whether err (or anything it wraps) has the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

type fieldError struct {
	field  string
	reason string
}

// ValidationErrors accumulates per-field validation failures.
type ValidationErrors struct {
	fields []fieldError
}

func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{}
}

func (v *ValidationErrors) Add(field, reason string) {
	v.fields = append(v.fields, fieldError{field: field, reason: reason})
}

// Err returns nil when no failures were added, otherwise a single
// Invalid error listing every field.
func (v *ValidationErrors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	parts := make([]string, len(v.fields))
	for i, f := range v.fields {
		parts[i] = fmt.Sprintf("%s %s", f.field, f.reason)
	}
	return E(Invalid, strings.Join(parts, "; "), nil)
}
