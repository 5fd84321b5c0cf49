// Package errors provides centralized error definitions for alnview:
// semantic error types for input validation plus re-exports of the standard
// library helpers so callers only need one errors import.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// ValidationError reports invalid user input: a bad sequence character, an
// empty field, a length mismatch, or an out-of-range config value. These are
// always safe to show to the user verbatim.
type ValidationError struct {
	Field   string // which input or config key failed (e.g. "seq2")
	Message string
}

// NewValidationError creates a ValidationError for the given field. The
// message may use fmt verbs.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsUserFacing reports whether err is safe to display to the user as-is.
// Currently only validation errors qualify; everything else should be
// logged and summarized.
func IsUserFacing(err error) bool {
	return IsValidation(err)
}
