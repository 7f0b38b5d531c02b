package errors

import (
	"net/http"

	apperrors "meeting-insights/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindInvalidInput  ErrorKind = "invalid_input"
	KindEmptyInput    ErrorKind = "empty_input"
	KindExtraction    ErrorKind = "extraction"
	KindConfiguration ErrorKind = "configuration"
	KindDelivery      ErrorKind = "delivery"
	KindNotFound      ErrorKind = "not_found"
	KindTooLarge      ErrorKind = "too_large"
	KindInternal      ErrorKind = "internal"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindEmptyInput:
		return http.StatusUnprocessableEntity
	case KindExtraction, KindDelivery:
		return http.StatusBadGateway
	case KindConfiguration:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates an invalid input error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindInvalidInput,
		Message: message,
		Details: fields,
	}
}

// NewBadRequestError creates an invalid input error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindInvalidInput,
		Message: message,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: message,
	}
}

// NewTooLargeError creates an upload size error
func NewTooLargeError(message string) *APIError {
	return &APIError{
		Kind:    KindTooLarge,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

var kinds = map[apperrors.Kind]ErrorKind{
	apperrors.KindInvalidInput:  KindInvalidInput,
	apperrors.KindEmptyInput:    KindEmptyInput,
	apperrors.KindExtraction:    KindExtraction,
	apperrors.KindConfiguration: KindConfiguration,
	apperrors.KindDelivery:      KindDelivery,
}

// FromError converts a classified application error. The second result is false for
// unclassified errors, which callers treat as internal.
func FromError(err error) (*APIError, bool) {
	if err == nil {
		return nil, false
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr, true
	}
	kind, ok := kinds[apperrors.KindOf(err)]
	if !ok {
		return nil, false
	}
	return &APIError{Kind: kind, Message: err.Error()}, true
}
