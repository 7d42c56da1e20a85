package errors

import (
	"fmt"
	"strings"
)

// Configuration errors (CFG001-099)
const (
	// ErrInvalidFileName indicates an output file name without the .ts extension
	ErrInvalidFileName ErrorCode = "CFG001"
	// ErrInvalidCaseStyle indicates an unsupported key case style
	ErrInvalidCaseStyle ErrorCode = "CFG002"
	// ErrEmptyEnvKey indicates a missing base URL environment variable name
	ErrEmptyEnvKey ErrorCode = "CFG003"
	// ErrInvalidConfig indicates any other invalid option
	ErrInvalidConfig ErrorCode = "CFG004"
)

// Directory errors (FS100-199)
const (
	// ErrMissingDirectory indicates the scan root does not exist
	ErrMissingDirectory ErrorCode = "FS100"
	// ErrNotDirectory indicates the scan root is a file
	ErrNotDirectory ErrorCode = "FS101"
)

// I/O errors (IO200-299)
const (
	// ErrRead indicates a list, stat or read failure during traversal
	ErrRead ErrorCode = "IO200"
	// ErrWrite indicates a failure writing the generated file
	ErrWrite ErrorCode = "IO201"
)

// Route warnings (WRN400-499)
const (
	// ErrShadowedAccessor indicates a generated key that hides an accessor name
	ErrShadowedAccessor ErrorCode = "WRN400"
	// ErrDuplicateParam indicates the same parameter name twice along one chain
	ErrDuplicateParam ErrorCode = "WRN401"
)

// NewInvalidFileName creates a CFG001 error
func NewInvalidFileName(name string) *CompilerError {
	return newError(
		ErrInvalidFileName,
		"invalid_file_name",
		CategoryConfiguration,
		SeverityError,
		fmt.Sprintf("Output file name '%s' must end with .ts", name),
	).WithSuggestion("Use a name such as paths.ts")
}

// NewInvalidCaseStyle creates a CFG002 error
func NewInvalidCaseStyle(style string, supported []string) *CompilerError {
	return newError(
		ErrInvalidCaseStyle,
		"invalid_case_style",
		CategoryConfiguration,
		SeverityError,
		fmt.Sprintf("Unsupported case style '%s'", style),
	).WithSuggestion("Supported styles: " + strings.Join(supported, ", "))
}

// NewEmptyEnvKey creates a CFG003 error
func NewEmptyEnvKey() *CompilerError {
	return newError(
		ErrEmptyEnvKey,
		"empty_env_key",
		CategoryConfiguration,
		SeverityError,
		"Environment variable key for the base URL cannot be empty",
	).WithSuggestion("Pass --env NEXT_PUBLIC_APP_BASE_URL or set env_key in pathgen.yaml")
}

// NewInvalidConfig creates a CFG004 error
func NewInvalidConfig(field, reason string) *CompilerError {
	return newError(
		ErrInvalidConfig,
		"invalid_config",
		CategoryConfiguration,
		SeverityError,
		fmt.Sprintf("Invalid value for %s: %s", field, reason),
	)
}

// NewMissingDirectory creates a FS100 error
func NewMissingDirectory(dir string) *CompilerError {
	return newError(
		ErrMissingDirectory,
		"missing_directory",
		CategoryMissingDirectory,
		SeverityError,
		"App directory does not exist",
	).WithPath(dir).WithSuggestion("Pass the App Router root with --app-dir")
}

// NewNotDirectory creates a FS101 error
func NewNotDirectory(path string) *CompilerError {
	return newError(
		ErrNotDirectory,
		"not_directory",
		CategoryMissingDirectory,
		SeverityError,
		"App directory path is not a directory",
	).WithPath(path)
}

// NewRead creates an IO200 error
func NewRead(path string, op string, err error) *CompilerError {
	e := newError(
		ErrRead,
		"read_failed",
		CategoryIO,
		SeverityError,
		fmt.Sprintf("Failed to %s", op),
	).WithPath(path)
	e.Err = err
	return e
}

// NewWrite creates an IO201 error
func NewWrite(path string, err error) *CompilerError {
	e := newError(
		ErrWrite,
		"write_failed",
		CategoryIO,
		SeverityError,
		"Failed to write generated file",
	).WithPath(path).WithSuggestion("The previous output, if any, was left untouched")
	e.Err = err
	return e
}

// NewShadowedAccessor creates a WRN400 warning
func NewShadowedAccessor(route, key string) *CompilerError {
	return newError(
		ErrShadowedAccessor,
		"shadowed_accessor",
		CategoryRoute,
		SeverityWarning,
		fmt.Sprintf("Route key '%s' hides the '%s' accessor of its parent", key, key),
	).WithPath(route).WithSuggestion("Rename the directory or use a different case style")
}

// NewDuplicateParam creates a WRN401 warning
func NewDuplicateParam(route, param string) *CompilerError {
	return newError(
		ErrDuplicateParam,
		"duplicate_param",
		CategoryRoute,
		SeverityWarning,
		fmt.Sprintf("Parameter '%s' is declared more than once along this route; the inner argument hides the outer one", param),
	).WithPath(route)
}
