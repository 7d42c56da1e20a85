// Package errors provides structured error handling for the path compiler.
// Every error carries a unique code, a category and the offending path so
// the caller can fix its input and re-run. All errors are fatal to a run;
// warnings are collected separately in an ErrorList.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode string

// ErrorCategory represents the category of a compiler error
type ErrorCategory string

const (
	// CategoryConfiguration represents invalid options (CFG001-099)
	CategoryConfiguration ErrorCategory = "configuration"
	// CategoryMissingDirectory represents a missing scan root (FS100-199)
	CategoryMissingDirectory ErrorCategory = "missing_directory"
	// CategoryIO represents read, list, stat and write failures (IO200-299)
	CategoryIO ErrorCategory = "io"
	// CategoryRoute represents route tree warnings (WRN400-499)
	CategoryRoute ErrorCategory = "route"
)

// ErrorSeverity indicates the severity level of an error
type ErrorSeverity string

const (
	// SeverityError indicates an error that aborts generation
	SeverityError ErrorSeverity = "error"
	// SeverityWarning indicates a suspicious but valid route tree
	SeverityWarning ErrorSeverity = "warning"
)

// CompilerError represents a structured error
type CompilerError struct {
	// Code is the unique error code (e.g., "CFG001", "IO200")
	Code ErrorCode `json:"code"`
	// Type is a machine-readable error type identifier
	Type string `json:"type"`
	// Category is the error category
	Category ErrorCategory `json:"category"`
	// Severity is the error severity level
	Severity ErrorSeverity `json:"severity"`
	// Message is the primary error message
	Message string `json:"message"`
	// Path is the offending file or directory (optional)
	Path string `json:"path,omitempty"`
	// Suggestion provides a hint for fixing the error (optional)
	Suggestion string `json:"suggestion,omitempty"`
	// Documentation is a URL to detailed error documentation
	Documentation string `json:"documentation,omitempty"`
	// Err is the underlying cause (optional)
	Err error `json:"-"`
}

// Error implements the error interface
func (e *CompilerError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *CompilerError) Unwrap() error {
	return e.Err
}

// Format returns a human-readable error message for terminal output
func (e *CompilerError) Format() string {
	return FormatError(e)
}

// ToJSON returns the error as a JSON string
func (e *CompilerError) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// WithPath sets the offending path
func (e *CompilerError) WithPath(path string) *CompilerError {
	e.Path = path
	return e
}

// WithSuggestion sets a suggestion for fixing the error
func (e *CompilerError) WithSuggestion(suggestion string) *CompilerError {
	e.Suggestion = suggestion
	return e
}

// ErrorList is a collection of compiler errors
type ErrorList []*CompilerError

// Error implements the error interface
func (el ErrorList) Error() string {
	if len(el) == 0 {
		return "no errors"
	}
	return FormatErrorList(el)
}

// HasErrors returns true if the list contains any errors (excludes warnings)
func (el ErrorList) HasErrors() bool {
	for _, err := range el {
		if err.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of errors by severity
func (el ErrorList) ErrorCount() (errors, warnings int) {
	for _, err := range el {
		switch err.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return
}

// IsConfiguration reports whether err is a configuration error
func IsConfiguration(err error) bool {
	return hasCategory(err, CategoryConfiguration)
}

// IsMissingDirectory reports whether err reports a missing scan root
func IsMissingDirectory(err error) bool {
	return hasCategory(err, CategoryMissingDirectory)
}

// IsIO reports whether err is a filesystem access failure
func IsIO(err error) bool {
	return hasCategory(err, CategoryIO)
}

// As extracts the first CompilerError in err's chain
func As(err error) (*CompilerError, bool) {
	var ce *CompilerError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func hasCategory(err error, category ErrorCategory) bool {
	ce, ok := As(err)
	return ok && ce.Category == category
}

// documentationURL returns the documentation URL for an error code
func documentationURL(code ErrorCode) string {
	return fmt.Sprintf("https://docs.conduit-lang.org/pathgen/errors/%s", code)
}

// newError creates a new CompilerError with the given parameters
func newError(
	code ErrorCode,
	typ string,
	category ErrorCategory,
	severity ErrorSeverity,
	message string,
) *CompilerError {
	return &CompilerError{
		Code:          code,
		Type:          typ,
		Category:      category,
		Severity:      severity,
		Message:       message,
		Documentation: documentationURL(code),
	}
}
