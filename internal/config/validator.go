package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g. "tui.debounce_ms")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks a Config for out-of-range values. It returns a
// ValidationErrors collecting every problem found, or nil.
func Validate(c *Config) error {
	var errs ValidationErrors

	if c.TUI.DebounceMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "tui.debounce_ms",
			Value:   c.TUI.DebounceMs,
			Message: "must not be negative",
		})
	}
	if c.TUI.DebounceMs > 5000 {
		errs = append(errs, ValidationError{
			Field:   "tui.debounce_ms",
			Value:   c.TUI.DebounceMs,
			Message: "must be at most 5000",
		})
	}
	if c.TUI.NoticeMs < 1 {
		errs = append(errs, ValidationError{
			Field:   "tui.notice_ms",
			Value:   c.TUI.NoticeMs,
			Message: "must be at least 1",
		})
	}
	if c.Render.DefaultWidth < 1 {
		errs = append(errs, ValidationError{
			Field:   "render.default_width",
			Value:   c.Render.DefaultWidth,
			Message: "must be at least 1",
		})
	}
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
