package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error for the request boundary
type Kind string

const (
	KindUnknown       Kind = ""
	KindInvalidInput  Kind = "invalid_input"
	KindEmptyInput    Kind = "empty_input"
	KindExtraction    Kind = "extraction"
	KindConfiguration Kind = "configuration"
	KindDelivery      Kind = "delivery"
)

// Common error types
var (
	// Input errors
	ErrInvalidMediaType = New(KindInvalidInput, "invalid file type, please upload an audio file")
	ErrEmptyTranscript  = New(KindEmptyInput, "transcript is empty, please provide a transcript or an audio file")

	// Extraction errors
	ErrNoStructuredOutput = New(KindExtraction, "model returned no structured output")

	// Configuration errors
	ErrMissingAPIKey          = New(KindConfiguration, "API key is required")
	ErrMissingMailCredentials = New(KindConfiguration, "mail credentials are not configured")
	ErrUnknownProvider        = New(KindConfiguration, "unknown model provider")
)

// Error represents a standardized error
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New creates a new error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates a new formatted error
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a kind and additional context
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Kind returns the error classification
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.message == t.message
}

// KindOf returns the kind of the outermost classified error in the chain.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok && e.kind != KindUnknown {
			return e.kind
		}
		err = stderrors.Unwrap(err)
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Helper functions for common patterns

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return Newf(KindInvalidInput, "%s is required", field)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return Newf(KindInvalidInput, "%s is invalid: %s", field, reason)
}

// Extraction wraps a failed model call for the named flow
func Extraction(flow string, err error) error {
	return Wrapf(err, KindExtraction, "%s failed", flow)
}

// Delivery wraps a rejected mail send
func Delivery(err error) error {
	return Wrap(err, KindDelivery, "email delivery failed")
}
