// Package errors provides actionable error handling with context-aware suggestions.
//
// This package enriches display connection errors with a category and actionable
// suggestions so a verbose scan can explain why a socket was skipped. It detects
// the usual failure shapes (malformed display name, refused connection, stale or
// missing socket, permissions, X authorization, protocol mismatch) and offers
// specific guidance for each.
//
// Basic Usage:
//
//	enricher := errors.NewEnricher()
//	conn, err := connector.Open(":0")
//	if err != nil {
//	    enriched := enricher.Enrich(err, ":0")
//	    fmt.Println(enriched.Error())
//	    fmt.Println(errors.FormatSuggestions(enriched))
//	}
//
// The enricher extracts a socket path from the error message when no affected
// identifier is given:
//
//	err := errors.New("dial unix /tmp/.X11-unix/X3: connect: connection refused")
//	enriched := enricher.Enrich(err, "") // affected path is /tmp/.X11-unix/X3
package errors

import "strings"

// Exported constants.
const (
	CategoryAuthorization ErrorCategory = "authorization"
	CategoryDisplayName   ErrorCategory = "display_name"
	CategoryPermission    ErrorCategory = "permission"
	CategoryProtocol      ErrorCategory = "protocol"
	CategoryRefused       ErrorCategory = "refused"
	CategorySocketMissing ErrorCategory = "socket_missing"
	CategoryUnknown       ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	originalError string,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		originalError: originalError,
		category:      category,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list.
// Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	originalError string
	category      ErrorCategory
	suggestions   []string
	affectedPath  string
}

// AffectedPath returns the socket path or display identifier affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.originalError
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}
