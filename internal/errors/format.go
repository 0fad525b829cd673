package errors

import (
	"fmt"
	"strings"
)

// FormatForCLI formats an error for CLI output.
// Uses a concise format suitable for terminal display.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	le, ok := err.(*LensError)
	if !ok {
		// Wrap standard error
		le = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", le.Message))

	if le.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("Suggestion: %s\n", le.Suggestion))
	}

	sb.WriteString(fmt.Sprintf("[%s]", le.Code))

	return sb.String()
}

// FormatForLog formats an error as key-value pairs for structured logging.
// Returns alternating keys and values suitable for slog.
func FormatForLog(err error) []any {
	if err == nil {
		return nil
	}

	le, ok := err.(*LensError)
	if !ok {
		return []any{"error", err.Error()}
	}

	attrs := []any{
		"error", le.Message,
		"code", le.Code,
		"category", string(le.Category),
		"severity", string(le.Severity),
	}
	for k, v := range le.Details {
		attrs = append(attrs, "detail_"+k, v)
	}
	if le.Cause != nil {
		attrs = append(attrs, "cause", le.Cause.Error())
	}
	return attrs
}
