// Package errors provides standardized error types for the nginx-gen tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the generator.
//
// # Error Types
//
// GenError is the primary error type, containing:
//   - Code: Categorizes the error (CONFIG, NOT_FOUND, etc.)
//   - Message: Human-readable error description
//   - Project: The project name involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Common error scenarios have pre-defined sentinel errors:
//
//	errors.ErrProjectNotFound   // requested project not in the registry
//	errors.ErrRegistryInvalid   // registry file missing or unparsable
//	errors.ErrValidationFailed  // post-generation checks reported failures
//
// # Usage
//
// Creating domain-specific errors:
//
//	// Project not found
//	return errors.NotFound("filter-ical")
//
//	// Wrapping an underlying error
//	return errors.Wrap(errors.ErrCodeConfig, "failed to load registry", err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrProjectNotFound) {
//	    // Handle not found case
//	}
//
// Use errors.As for type assertion:
//
//	var genErr *errors.GenError
//	if errors.As(err, &genErr) {
//	    fmt.Printf("Error code: %s, Project: %s\n", genErr.Code, genErr.Project)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeConfig     ErrorCode = "CONFIG"     // Registry file missing or malformed
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"  // Requested project not in registry
	ErrCodeRender     ErrorCode = "RENDER"     // Server block rendering failed
	ErrCodeValidation ErrorCode = "VALIDATION" // Post-generation check failed
	ErrCodeIO         ErrorCode = "IO"         // Output directory or file write error
)

// GenError represents a structured error with context about the operation.
type GenError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Project string    // Project name (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *GenError) Error() string {
	if e.Project != "" && e.Err != nil {
		return fmt.Sprintf("project %s: %s: %v", e.Project, e.Message, e.Err)
	}
	if e.Project != "" {
		return fmt.Sprintf("project %s: %s", e.Project, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *GenError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *GenError) Is(target error) bool {
	t, ok := target.(*GenError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrProjectNotFound indicates the requested project is not in the registry.
	ErrProjectNotFound = &GenError{Code: ErrCodeNotFound, Message: "project not found"}

	// ErrRegistryInvalid indicates the registry file is missing or unparsable.
	ErrRegistryInvalid = &GenError{Code: ErrCodeConfig, Message: "invalid project registry"}

	// ErrValidationFailed indicates post-generation checks reported failures.
	ErrValidationFailed = &GenError{Code: ErrCodeValidation, Message: "validation failed"}
)

// NotFound creates an error for a project that is not in the registry.
func NotFound(project string) error {
	return &GenError{
		Code:    ErrCodeNotFound,
		Message: "project not found",
		Project: project,
	}
}

// Render creates an error for a project whose block rendering failed.
func Render(project string, err error) error {
	return &GenError{
		Code:    ErrCodeRender,
		Message: "failed to render config",
		Project: project,
		Err:     err,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &GenError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
