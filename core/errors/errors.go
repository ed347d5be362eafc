// Package errors provides standardized error types and helpers for the phrasplit codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the segmentation error taxonomy
var (
	// ErrInvalidMode indicates an unrecognized splitting mode
	ErrInvalidMode = errors.New("invalid splitting mode")
	// ErrInvalidConfiguration indicates a structurally invalid split configuration
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrBackendUnavailable indicates an explicitly requested backend whose dependency is missing
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrInvalidPattern indicates a placeholder pattern that does not compile
	ErrInvalidPattern = errors.New("invalid placeholder pattern")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
)

// ModeError represents an unrecognized splitting mode with context
type ModeError struct {
	Mode string // The mode value that was rejected
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid splitting mode: %q (want paragraph, sentence, or clause)", e.Mode)
}

func (e *ModeError) Unwrap() error {
	return ErrInvalidMode
}

// ConfigError represents a structurally invalid split configuration
type ConfigError struct {
	Field   string // Option that failed validation (e.g., "max_chars", "backend")
	Message string // Human-readable error message
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// BackendError represents an explicitly requested backend that cannot be used
type BackendError struct {
	Backend string // Backend that was requested (e.g., "accurate")
	Reason  string // Why it is unavailable
	Err     error  // Underlying error, if any
}

func (e *BackendError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("backend %q unavailable: %s", e.Backend, e.Reason)
	}
	return fmt.Sprintf("backend %q unavailable", e.Backend)
}

func (e *BackendError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrBackendUnavailable
}

// Is reports whether a BackendError matches ErrBackendUnavailable even when
// it wraps an underlying cause.
func (e *BackendError) Is(target error) bool {
	return target == ErrBackendUnavailable
}

// PatternError represents a placeholder pattern that failed to compile
type PatternError struct {
	Pattern string // The pattern source text
	Err     error  // Underlying regexp compile error
}

func (e *PatternError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid placeholder pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("invalid placeholder pattern %q", e.Pattern)
}

func (e *PatternError) Unwrap() error {
	return ErrInvalidPattern
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Helper functions for creating common errors

// NewMode creates a ModeError
func NewMode(mode string) *ModeError {
	return &ModeError{Mode: mode}
}

// NewConfig creates a ConfigError
func NewConfig(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewBackend creates a BackendError
func NewBackend(backend, reason string, err error) *BackendError {
	return &BackendError{Backend: backend, Reason: reason, Err: err}
}

// NewPattern creates a PatternError
func NewPattern(pattern string, err error) *PatternError {
	return &PatternError{Pattern: pattern, Err: err}
}

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
