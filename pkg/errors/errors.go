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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Invocation errors
	ErrMissingArgument ErrorCode = "MISSING_ARGUMENT"
	ErrPrompt          ErrorCode = "PROMPT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Source errors
	ErrFetch ErrorCode = "FETCH"

	// FileSystem errors
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrCopy      ErrorCode = "COPY"
	ErrDelete    ErrorCode = "DELETE"
	ErrBackup    ErrorCode = "BACKUP"
)

// HearthError represents a structured error with code and details
type HearthError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HearthError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HearthError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HearthError) Is(target error) bool {
	var targetErr *HearthError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HearthError with the given code and message
func New(code ErrorCode, message string) *HearthError {
	return &HearthError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HearthError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HearthError {
	return &HearthError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HearthError.
// A nil err yields a nil *HearthError; callers returning it as an error
// must check err first.
func Wrap(err error, code ErrorCode, message string) *HearthError {
	if err == nil {
		return nil
	}
	return &HearthError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HearthError {
	if err == nil {
		return nil
	}
	return &HearthError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HearthError) WithDetail(key string, value interface{}) *HearthError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *HearthError) WithDetails(details map[string]interface{}) *HearthError {
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
	var hearthErr *HearthError
	if errors.As(err, &hearthErr) {
		return hearthErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HearthError
func GetErrorCode(err error) ErrorCode {
	var hearthErr *HearthError
	if errors.As(err, &hearthErr) {
		return hearthErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HearthError
func GetErrorDetails(err error) map[string]interface{} {
	var hearthErr *HearthError
	if errors.As(err, &hearthErr) {
		return hearthErr.Details
	}
	return nil
}

