package errors

import (
	"fmt"
)

// LensError is the structured error type for Termlens.
// It provides rich context for error handling, logging, and user presentation.
type LensError struct {
	// Code is the unique error code (e.g., "ERR_204_STATS_UNAVAILABLE").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, Index, Validation, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *LensError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *LensError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with LensError.
func (e *LensError) Is(target error) bool {
	if t, ok := target.(*LensError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *LensError) WithDetail(key, value string) *LensError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *LensError) WithSuggestion(suggestion string) *LensError {
	e.Suggestion = suggestion
	return e
}

// New creates a new LensError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *LensError {
	return &LensError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a LensError from an existing error.
// The error's message becomes the LensError message.
func Wrap(code string, err error) *LensError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// InvalidArgument creates a defensive-precondition violation error.
func InvalidArgument(message string) *LensError {
	return New(ErrCodeInvalidArgument, message, nil)
}

// StatsUnavailable creates an error for a statistics provider that
// cannot answer for a field. Fatal to the lookup session.
func StatsUnavailable(field string, cause error) *LensError {
	return New(ErrCodeStatsUnavailable,
		fmt.Sprintf("collection statistics unavailable for field %q", field), cause).
		WithDetail("field", field)
}

// HandleCreate creates a per-term handle creation error.
// Does not poison other terms in the same cache.
func HandleCreate(term string, cause error) *LensError {
	return New(ErrCodeHandleCreate,
		fmt.Sprintf("failed to create term handle for %q", term), cause).
		WithDetail("term", term)
}

// FlagsMismatch creates a flags contract violation error.
func FlagsMismatch(message string) *LensError {
	return New(ErrCodeFlagsMismatch, message, nil).
		WithSuggestion("request the wider flag set on the first lookup of this term")
}

// SeekFailed creates a context-propagation error for a term handle.
// Fatal: a partially-updated cache cannot be trusted for subsequent documents.
func SeekFailed(term string, cause error) *LensError {
	return New(ErrCodeSeekFailed,
		fmt.Sprintf("failed to re-seek term handle for %q", term), cause).
		WithDetail("term", term)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *LensError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *LensError {
	return New(ErrCodeInternal, message, cause)
}

// IsFatal checks if an error has fatal severity.
// Fatal errors should abort the current lookup session.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if le, ok := err.(*LensError); ok {
		return le.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a LensError.
// Returns empty string if not a LensError.
func GetCode(err error) string {
	if le, ok := err.(*LensError); ok {
		return le.Code
	}
	return ""
}

// GetCategory extracts the category from a LensError.
// Returns empty string if not a LensError.
func GetCategory(err error) Category {
	if le, ok := err.(*LensError); ok {
		return le.Category
	}
	return ""
}
