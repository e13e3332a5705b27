// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and are mapped to HTTP statuses by adapters.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a state conflict such as a duplicate identifier.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates one or more business rule violations.
	ErrValidation = errors.New("validation failed")

	// ErrMalformed indicates a request payload that could not be parsed
	// into the expected shape, or a missing required field.
	ErrMalformed = errors.New("malformed request")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError provides context for conflict errors.
type ConflictError struct {
	Entity string
	Reason string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// MalformedError provides context for unparseable or incomplete requests.
type MalformedError struct {
	Reason string
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	return "malformed request: " + e.Reason
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

// NewMalformedError creates a malformed request error with context.
func NewMalformedError(reason string) error {
	return &MalformedError{Reason: reason}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// Violation is a single field-scoped validation failure.
type Violation struct {
	// Field is the path of the offending field, e.g. "validUntil".
	Field string `json:"field"`

	// Code is a machine-readable reason, e.g. "validUntil.beforeStartDate".
	Code string `json:"code"`

	// Message is the human-readable explanation.
	Message string `json:"message"`
}

// Violations aggregates the rule violations found on a candidate entity.
// It implements error so a validation result can travel the usual error path.
type Violations []Violation

// Error implements the error interface.
func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = fmt.Sprintf("%s: %s", violation.Field, violation.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap returns the sentinel error for errors.Is() support.
func (v Violations) Unwrap() error {
	return ErrValidation
}

// AsError returns the violations as an error, or nil when there are none.
func (v Violations) AsError() error {
	if len(v) == 0 {
		return nil
	}

	return v
}

// ViolationsFrom extracts the violation list from an error, if it carries one.
func ViolationsFrom(err error) Violations {
	var v Violations
	if errors.As(err, &v) {
		return v
	}

	return nil
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsMalformed checks if an error is a malformed request error.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
