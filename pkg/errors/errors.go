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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Input parsing errors
	ErrSeedParse    ErrorCode = "SEED_PARSE"
	ErrSectionParse ErrorCode = "SECTION_PARSE"
	ErrRuleParse    ErrorCode = "RULE_PARSE"
	ErrRuleOverlap  ErrorCode = "RULE_OVERLAP"

	// Interval invariants
	ErrZeroLength ErrorCode = "ZERO_LENGTH"
	ErrOverflow   ErrorCode = "OVERFLOW"

	// Query errors
	ErrOddSeeds      ErrorCode = "ODD_SEEDS"
	ErrEmptySeeds    ErrorCode = "EMPTY_SEEDS"
	ErrQueryCanceled ErrorCode = "QUERY_CANCELED"
)

// AlmanacError represents a structured error with code and details
type AlmanacError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AlmanacError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AlmanacError) Unwrap() error {
	return e.Wrapped
}

// Is matches any AlmanacError carrying the same code
func (e *AlmanacError) Is(target error) bool {
	var targetErr *AlmanacError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AlmanacError with the given code and message
func New(code ErrorCode, message string) *AlmanacError {
	return &AlmanacError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AlmanacError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AlmanacError {
	return &AlmanacError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AlmanacError
func Wrap(err error, code ErrorCode, message string) *AlmanacError {
	if err == nil {
		return nil
	}
	return &AlmanacError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AlmanacError {
	if err == nil {
		return nil
	}
	return &AlmanacError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AlmanacError) WithDetail(key string, value interface{}) *AlmanacError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *AlmanacError) WithDetails(details map[string]interface{}) *AlmanacError {
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
	var almanacErr *AlmanacError
	if errors.As(err, &almanacErr) {
		return almanacErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AlmanacError
func GetErrorCode(err error) ErrorCode {
	var almanacErr *AlmanacError
	if errors.As(err, &almanacErr) {
		return almanacErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AlmanacError
func GetErrorDetails(err error) map[string]interface{} {
	var almanacErr *AlmanacError
	if errors.As(err, &almanacErr) {
		return almanacErr.Details
	}
	return nil
}
