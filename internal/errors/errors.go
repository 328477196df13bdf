package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the category of a failure so the presentation layer
// can map it to a message without inspecting strings.
type ErrorCode string

const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// Configuration store
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
	ErrConfigSave ErrorCode = "CONFIG_SAVE"

	// Custom time list
	ErrInvalidValue ErrorCode = "INVALID_VALUE"
	ErrDuplicate    ErrorCode = "DUPLICATE"
	ErrNoSelection  ErrorCode = "NO_SELECTION"

	// Supporting stores and devices
	ErrSettings        ErrorCode = "SETTINGS"
	ErrHistory         ErrorCode = "HISTORY"
	ErrToneUnavailable ErrorCode = "TONE_UNAVAILABLE"
)

// CountdownError is a coded error with optional details and a wrapped cause.
type CountdownError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CountdownError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CountdownError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a CountdownError with the same code.
func (e *CountdownError) Is(target error) bool {
	var targetErr *CountdownError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a CountdownError with the given code and message.
func New(code ErrorCode, message string) *CountdownError {
	return &CountdownError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a CountdownError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *CountdownError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *CountdownError {
	if err == nil {
		return nil
	}
	wrapped := New(code, message)
	wrapped.Wrapped = err
	return wrapped
}

// Wrapf wraps err with a code and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CountdownError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *CountdownError) WithDetail(key string, value interface{}) *CountdownError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var countdownErr *CountdownError
	if errors.As(err, &countdownErr) {
		return countdownErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code of err, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var countdownErr *CountdownError
	if errors.As(err, &countdownErr) {
		return countdownErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of err, or nil.
func GetErrorDetails(err error) map[string]interface{} {
	var countdownErr *CountdownError
	if errors.As(err, &countdownErr) {
		return countdownErr.Details
	}
	return nil
}
