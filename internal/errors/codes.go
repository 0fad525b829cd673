// Package errors provides structured error handling for Termlens.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Index errors (segments, statistics, corpus ingestion)
//   - 4XX: Validation errors (caller contract violations)
//   - 5XX: Lookup and internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIndex indicates segment, statistics, and ingestion errors.
	CategoryIndex Category = "INDEX"
	// CategoryValidation indicates caller contract violations.
	CategoryValidation Category = "VALIDATION"
	// CategoryLookup indicates term-lookup session errors.
	CategoryLookup Category = "LOOKUP"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates the lookup session cannot continue.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates the operation failed but the session can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// Index errors (200-299)
	ErrCodeCorpusNotFound   = "ERR_201_CORPUS_NOT_FOUND"
	ErrCodeCorpusInvalid    = "ERR_202_CORPUS_INVALID"
	ErrCodeSegmentSealed    = "ERR_203_SEGMENT_SEALED"
	ErrCodeStatsUnavailable = "ERR_204_STATS_UNAVAILABLE"
	ErrCodeUnknownField     = "ERR_205_UNKNOWN_FIELD"

	// Validation errors (400-499)
	ErrCodeInvalidArgument = "ERR_401_INVALID_ARGUMENT"
	ErrCodeFlagsMismatch   = "ERR_402_FLAGS_MISMATCH"

	// Lookup and internal errors (500-599)
	ErrCodeInternal     = "ERR_501_INTERNAL"
	ErrCodeHandleCreate = "ERR_502_HANDLE_CREATE_FAILED"
	ErrCodeSeekFailed   = "ERR_503_SEEK_FAILED"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Extract numeric portion (e.g., "204" from "ERR_204_STATS_UNAVAILABLE")
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIndex
	case '4':
		return CategoryValidation
	case '5':
		if code == ErrCodeInternal {
			return CategoryInternal
		}
		return CategoryLookup
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	// Errors that leave the lookup session unusable.
	switch code {
	case ErrCodeStatsUnavailable, ErrCodeSeekFailed:
		return SeverityFatal
	}

	return SeverityError
}
