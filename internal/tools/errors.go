package tools

import (
	"errors"
	"fmt"
)

// Error codes for tool operations
const (
	ErrToolNotFound        = "TOOL_NOT_FOUND"
	ErrResourceUnavailable = "RESOURCE_UNAVAILABLE"
	ErrProcessingFailed    = "PROCESSING_FAILED"
	ErrInvalidInput        = "INVALID_INPUT"
)

// Error represents a tool-related error
type Error struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewUnknownToolError creates an error for a request naming a tool that is
// not in the registry. This is the only client-caused error code.
func NewUnknownToolError(name string) *Error {
	return &Error{
		Code:    ErrToolNotFound,
		Message: fmt.Sprintf("Unknown tool: %s", name),
	}
}

// NewResourceUnavailableError creates an error for a tool whose backing
// resource (model or network dependency) could not be reached.
func NewResourceUnavailableError(tool string, cause error) *Error {
	return &Error{
		Code:    ErrResourceUnavailable,
		Message: fmt.Sprintf("backing resource unavailable for tool %s", tool),
		Cause:   cause,
	}
}

// NewProcessingError creates an error for a failure while processing an
// otherwise valid request.
func NewProcessingError(tool string, cause error) *Error {
	return &Error{
		Code:    ErrProcessingFailed,
		Message: fmt.Sprintf("tool %s failed to process input", tool),
		Cause:   cause,
	}
}

// NewInvalidInputError creates an error for input the tool cannot decode,
// such as a malformed base64 image payload.
func NewInvalidInputError(tool, reason string) *Error {
	return &Error{
		Code:    ErrInvalidInput,
		Message: fmt.Sprintf("invalid input for tool %s: %s", tool, reason),
	}
}

// IsUnknownTool reports whether err is a tool-not-found error. The
// dispatcher uses this to distinguish client errors from handler failures.
func IsUnknownTool(err error) bool {
	var toolErr *Error
	if errors.As(err, &toolErr) {
		return toolErr.Code == ErrToolNotFound
	}
	return false
}

// ErrorCode extracts the tool error code from err, or empty string if err
// is not a tool error.
func ErrorCode(err error) string {
	var toolErr *Error
	if errors.As(err, &toolErr) {
		return toolErr.Code
	}
	return ""
}
