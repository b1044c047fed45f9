package domain

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is. Adapters translate them to transport
// codes; the provider treats every fetch error as a reason to fall back.
var (
	// ErrNotFound is a miss: no cache entry for the key, or a 404 upstream.
	ErrNotFound = errors.New("not found")

	// ErrValidation is malformed input or an unusable quote payload.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable means the quote API (or another dependency) cannot answer.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError reports a missing item, usually a cache key.
type NotFoundError struct {
	What string
	Key  string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return e.What + " not found"
	}

	return fmt.Sprintf("%s %q not found", e.What, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError returns a NotFoundError for what, identified by key.
func NewNotFoundError(what, key string) error {
	return &NotFoundError{What: what, Key: key}
}

// ValidationError names the offending field when there is one.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError returns a ValidationError; field may be empty.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnavailableError reports a dependency that did not answer usefully.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("service %q unavailable", e.Service)
	}

	return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

// NewUnavailableError returns an UnavailableError for service.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err wraps ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsUnavailable reports whether err wraps ErrUnavailable.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
