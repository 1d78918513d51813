// Package util provides shared utility types for the route map layer.
//
// # Error Conventions
//
// This project follows a standardized error pattern across all packages:
//
//   - Sentinel errors (errors.New) for well-known, stable conditions
//     that callers check with errors.Is(). Example: ErrNotFound.
//   - Structured error types for context-rich errors that carry
//     additional fields (e.g., InvalidTreeError, ConfigError). Each type
//     implements Error(), Unwrap() (if wrapping), and Is().
//   - fmt.Errorf with %w for ad-hoc wrapping that adds context to an
//     existing error without introducing a new type.
//
// All custom error types must implement:
//
//	Error() string           – human-readable message
//	Unwrap() error           – if the type wraps another error
//	Is(target error) bool    – for errors.Is() compatibility
package util

import (
	"errors"
	"fmt"
)

// Common sentinel errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidTree     = errors.New("invalid router tree")
	ErrNotAncestor     = errors.New("node is not an ancestor")
	ErrConfigInvalid   = errors.New("invalid configuration")
)

// InvalidTreeError reports structural corruption in a router tree,
// such as a cycle or a broken parent linkage. It is a programming
// contract violation and is never recovered from at runtime.
type InvalidTreeError struct {
	Segment string
	Message string
}

// Error implements the error interface.
func (e *InvalidTreeError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("invalid router tree at %q: %s", e.Segment, e.Message)
	}
	return fmt.Sprintf("invalid router tree: %s", e.Message)
}

// Is checks if the error matches the target.
func (e *InvalidTreeError) Is(target error) bool {
	if target == ErrInvalidTree {
		return true
	}
	_, ok := target.(*InvalidTreeError)
	return ok
}

// NewInvalidTreeError creates a new InvalidTreeError.
func NewInvalidTreeError(segment, message string) *InvalidTreeError {
	return &InvalidTreeError{Segment: segment, Message: message}
}

// NotAnAncestorError reports a resolver invocation with two nodes
// where the first is not an ancestor of the second. Like
// InvalidTreeError it signals caller misuse, not a runtime condition.
type NotAnAncestorError struct {
	From string
	To   string
}

// Error implements the error interface.
func (e *NotAnAncestorError) Error() string {
	return fmt.Sprintf("node %q is not an ancestor of node %q", e.From, e.To)
}

// Is checks if the error matches the target.
func (e *NotAnAncestorError) Is(target error) bool {
	if target == ErrNotAncestor {
		return true
	}
	_, ok := target.(*NotAnAncestorError)
	return ok
}

// NewNotAnAncestorError creates a new NotAnAncestorError.
func NewNotAnAncestorError(from, to string) *NotAnAncestorError {
	return &NotAnAncestorError{From: from, To: to}
}

// ConfigError represents a configuration-related error.
type ConfigError struct {
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error at %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *ConfigError) Is(target error) bool {
	if target == ErrConfigInvalid {
		return true
	}
	_, ok := target.(*ConfigError)
	return ok || errors.Is(e.Cause, target)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewConfigErrorWithCause creates a new ConfigError with a cause.
func NewConfigErrorWithCause(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsContractViolation returns true if the error indicates a broken
// programming contract (corrupted tree or resolver misuse). These are
// surfaced immediately rather than handled.
func IsContractViolation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrInvalidTree) || errors.Is(err, ErrNotAncestor)
}
