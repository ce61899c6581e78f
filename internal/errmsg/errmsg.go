// Package errmsg provides enhanced error message formatting with actionable suggestions.
package errmsg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrewsipe/FontCore/internal/names"
)

// ErrorContext provides additional context for error formatting
type ErrorContext struct {
	Path string // The font file being processed (for suggestions)
}

// Format returns a formatted error message with possible causes and suggestions.
// The context parameter is optional - pass nil for generic formatting.
func Format(err error, ctx *ErrorContext) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	// Check for FormatError (structured errors from name derivation)
	var formatErr *names.FormatError
	if errors.As(err, &formatErr) {
		return formatNameError(formatErr, ctx)
	}

	// Check for permission errors
	if isPermissionError(errMsg) {
		return formatPermissionError(errMsg, ctx)
	}

	// Check for "not found" errors
	if isNotFoundError(errMsg) {
		return formatNotFoundError(errMsg, ctx)
	}

	// Return original error for unrecognized types
	return errMsg
}

func formatNameError(err *names.FormatError, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - The filename starts with a separator or style word\n")
	sb.WriteString("  - Every token in the filename is a recognized style term\n")

	sb.WriteString("\nSuggestions:\n")
	if ctx != nil && ctx.Path != "" {
		sb.WriteString(fmt.Sprintf("  - Rename %s to start with the family name\n", ctx.Path))
	} else if err.Filename != "" {
		sb.WriteString(fmt.Sprintf("  - Rename %q to start with the family name\n", err.Filename))
	} else {
		sb.WriteString("  - Rename the file to start with the family name\n")
	}
	sb.WriteString("  - Run 'fontcore parse <file>' to inspect the token classification\n")

	return sb.String()
}

func formatPermissionError(errMsg string, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(errMsg)
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - Insufficient permissions on the font directory\n")
	sb.WriteString("  - File or directory owned by different user\n")

	sb.WriteString("\nSuggestions:\n")
	if ctx != nil && ctx.Path != "" {
		sb.WriteString(fmt.Sprintf("  - Check permissions: ls -la %s\n", ctx.Path))
	} else {
		sb.WriteString("  - Check permissions on the scanned directory\n")
	}
	sb.WriteString("  - Ensure you own $FONTCORE_HOME: ls -la ~/.fontcore\n")

	return sb.String()
}

func formatNotFoundError(errMsg string, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(errMsg)
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - The file or directory does not exist\n")
	sb.WriteString("  - Typo in the path\n")

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - Check the spelling of the path\n")
	if ctx != nil && ctx.Path != "" {
		sb.WriteString(fmt.Sprintf("  - Verify the path exists: ls %s\n", ctx.Path))
	}

	return sb.String()
}

// isNotFoundError checks if the error message indicates something not found
func isNotFoundError(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "not found") ||
		strings.Contains(lower, "no such file") ||
		strings.Contains(lower, "does not exist")
}

// isPermissionError checks if the error message indicates a permission issue
func isPermissionError(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "permission denied") ||
		strings.Contains(lower, "access denied") ||
		strings.Contains(lower, "operation not permitted")
}
