package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigIO    ErrorCode = "CONFIG_IO"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Colorscheme errors
	ErrNoDefaultColorscheme ErrorCode = "NO_DEFAULT_COLORSCHEME"
	ErrUnknownColorscheme   ErrorCode = "UNKNOWN_COLORSCHEME"
	ErrCyclicDependency     ErrorCode = "CYCLIC_DEPENDENCY"
	ErrRenameSourceMissing  ErrorCode = "RENAME_SOURCE_MISSING"

	// Template errors
	ErrTemplateSourceMissing ErrorCode = "TEMPLATE_SOURCE_MISSING"
	ErrOutputPathInvalid     ErrorCode = "OUTPUT_PATH_INVALID"
	ErrUnresolvedPlaceholder ErrorCode = "UNRESOLVED_PLACEHOLDER"
	ErrRenderBatch           ErrorCode = "RENDER_BATCH"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// TintError represents a structured error with code and details
type TintError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TintError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TintError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TintError) Is(target error) bool {
	var targetErr *TintError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TintError with the given code and message
func New(code ErrorCode, message string) *TintError {
	return &TintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TintError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TintError {
	return &TintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TintError
func Wrap(err error, code ErrorCode, message string) *TintError {
	if err == nil {
		return nil
	}
	return &TintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TintError {
	if err == nil {
		return nil
	}
	return &TintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TintError) WithDetail(key string, value interface{}) *TintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TintError) WithDetails(details map[string]interface{}) *TintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tintErr *TintError
	if errors.As(err, &tintErr) {
		return tintErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TintError
func GetErrorCode(err error) ErrorCode {
	var tintErr *TintError
	if errors.As(err, &tintErr) {
		return tintErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TintError
func GetErrorDetails(err error) map[string]interface{} {
	var tintErr *TintError
	if errors.As(err, &tintErr) {
		return tintErr.Details
	}
	return nil
}

// HasErrorCode reports whether any TintError in err's tree carries code.
// Unlike IsErrorCode it looks past the outermost TintError, which matters
// for batch errors that join several failures.
func HasErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &TintError{Code: code})
}
