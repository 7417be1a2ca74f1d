// Package domain holds the quote entity, sync outcomes and the business errors
// shared by the store, the feed and the app services. Adapters map the errors
// to status codes; nothing here knows about HTTP beyond upstream status values.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Match these with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError names the record that is missing. ID is empty for lookups
// that are not by id, such as the quote shown on a given date.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError is a rejected input. Field is empty when the whole input
// is at fault.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// UnavailableError is a failed call to the quote feed or another dependency.
// StatusCode is the upstream HTTP status, or zero when no response arrived.
type UnavailableError struct {
	Service    string
	Reason     string
	StatusCode int
}

func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

func NewHTTPUnavailableError(service string, statusCode int, reason string) error {
	return &UnavailableError{Service: service, Reason: reason, StatusCode: statusCode}
}

func (e *UnavailableError) Error() string {
	msg := fmt.Sprintf("service %q unavailable", e.Service)

	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": HTTP %d", e.StatusCode)
	}

	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

// Retryable is true for a missing response, throttling or a 5xx. Any other
// upstream status will not change on a second attempt.
func (e *UnavailableError) Retryable() bool {
	switch {
	case e.StatusCode == 0, e.StatusCode == http.StatusTooManyRequests:
		return true
	default:
		return e.StatusCode >= http.StatusInternalServerError
	}
}

func IsNotFound(err error) bool    { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool  { return errors.Is(err, ErrValidation) }
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }

// IsRetryable reports whether err wraps a retryable UnavailableError.
func IsRetryable(err error) bool {
	var unavailable *UnavailableError

	return errors.As(err, &unavailable) && unavailable.Retryable()
}
