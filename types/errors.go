package types

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Every conversion failure is one of these kinds. Callers should branch on
// Kind and Field rather than matching error strings.
type Kind string

const (
	// KindMissingField: a field the domain model requires is absent.
	KindMissingField Kind = "MissingField"
	// KindInvalidField: a field is present but its value is not acceptable.
	KindInvalidField Kind = "InvalidField"
	// KindInvalidBufferLength: an identifier or key has the wrong length.
	KindInvalidBufferLength Kind = "InvalidBufferLength"
	// KindPackable: a payload failed structural verification.
	KindPackable Kind = "PackableError"
)

// Error is the conversion error type.
//
// Field names the offending wire field using the schema's own name
// (e.g. "message_id"). Cause, when set, is the lower-level decode error and is
// informational only.
type Error struct {
	Kind  Kind
	Field string
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := string(e.Kind)
	if e.Field != "" {
		msg += "(" + e.Field + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func missingField(field string) error {
	return &Error{Kind: KindMissingField, Field: field}
}

func invalidField(field string) error {
	return &Error{Kind: KindInvalidField, Field: field}
}

func invalidBufferLength(field string, cause error) error {
	return &Error{Kind: KindInvalidBufferLength, Field: field, Cause: cause}
}

func packableError(field string, cause error) error {
	return &Error{Kind: KindPackable, Field: field, Cause: cause}
}

// IsKind reports whether err is (or wraps) an *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// FieldName returns the offending field of a conversion error, or "".
func FieldName(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Field
}
