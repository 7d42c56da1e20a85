package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conduit-lang/pathgen/internal/compiler/errors"
)

// ErrorLevel represents the severity of an error message
type ErrorLevel int

const (
	ErrorLevelError ErrorLevel = iota
	ErrorLevelWarning
	ErrorLevelInfo
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Level        ErrorLevel
	Context      string
	Problem      string
	Location     string
	Suggestions  []string
	Hint         string
	HelpCommands []string
	NoColor      bool
}

// FormatError creates a standardized error message with suggestions and help commands
//
// Example output:
//
//	❌ CONFIGURATION ERROR [CFG002]
//	   Unsupported case style 'camel-case'
//
//	   Did you mean: camelCase?
//
//	   → Get help: pathgen generate --help
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	var headerColor, bodyColor *color.Color
	var symbol string

	switch opts.Level {
	case ErrorLevelError:
		headerColor = color.New(color.FgRed, color.Bold)
		bodyColor = color.New(color.FgRed)
		symbol = "❌"
	case ErrorLevelWarning:
		headerColor = color.New(color.FgYellow, color.Bold)
		bodyColor = color.New(color.FgYellow)
		symbol = "⚠️"
	default:
		headerColor = color.New(color.FgCyan, color.Bold)
		bodyColor = color.New(color.FgCyan)
		symbol = "ℹ️"
	}

	if opts.NoColor {
		headerColor.DisableColor()
		bodyColor.DisableColor()
	}

	if opts.Context != "" {
		headerColor.Fprintf(&b, "%s %s\n", symbol, strings.ToUpper(opts.Context))
		bodyColor.Fprintf(&b, "   %s\n", opts.Problem)
	} else {
		headerColor.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	if opts.Location != "" {
		gray := color.New(color.FgHiBlack)
		if opts.NoColor {
			gray.DisableColor()
		}
		gray.Fprintf(&b, "   at %s\n", opts.Location)
	}

	if len(opts.Suggestions) > 0 || opts.Hint != "" {
		b.WriteString("\n")
		yellow := color.New(color.FgYellow)
		if opts.NoColor {
			yellow.DisableColor()
		}
		if len(opts.Suggestions) > 0 {
			yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
		}
		if opts.Hint != "" {
			yellow.Fprintf(&b, "   %s\n", opts.Hint)
		}
	}

	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		cyan := color.New(color.FgCyan)
		if opts.NoColor {
			cyan.DisableColor()
		}
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteError writes a formatted error message to the writer
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// CompilerError renders a coded generator error or warning
func CompilerError(e *errors.CompilerError, suggestions []string, noColor bool) string {
	opts := ErrorOptions{
		Level:       ErrorLevelError,
		Context:     fmt.Sprintf("%s [%s]", contextFor(e.Category), e.Code),
		Problem:     e.Message,
		Location:    e.Path,
		Suggestions: suggestions,
		Hint:        e.Suggestion,
		NoColor:     noColor,
	}
	if e.Err != nil {
		opts.Problem += ": " + e.Err.Error()
	}
	if e.Severity == errors.SeverityWarning {
		opts.Level = ErrorLevelWarning
	}

	switch e.Category {
	case errors.CategoryConfiguration:
		opts.HelpCommands = []string{
			"Write a config file: pathgen init",
			"Get help: pathgen generate --help",
		}
	case errors.CategoryMissingDirectory:
		opts.HelpCommands = []string{"Get help: pathgen generate --help"}
	}

	return FormatError(opts)
}

// WriteCompilerError writes err, formatted as a compiler error when it is one
func WriteCompilerError(w io.Writer, err error, suggestions []string, noColor bool) {
	if ce, ok := errors.As(err); ok {
		fmt.Fprint(w, CompilerError(ce, suggestions, noColor))
		return
	}
	WriteError(w, ErrorOptions{Level: ErrorLevelError, Problem: err.Error(), NoColor: noColor})
}

func contextFor(category errors.ErrorCategory) string {
	switch category {
	case errors.CategoryConfiguration:
		return "configuration error"
	case errors.CategoryMissingDirectory:
		return "app directory not found"
	case errors.CategoryIO:
		return "i/o error"
	case errors.CategoryRoute:
		return "route warning"
	default:
		return "error"
	}
}

// Info creates a standardized info message
func Info(message string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelInfo,
		Problem: message,
		NoColor: noColor,
	})
}
