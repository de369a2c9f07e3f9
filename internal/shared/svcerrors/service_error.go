package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidInput  = "invalid_input"
	categoryInvalidConfig = "invalid_config"
	categoryInternal      = "internal"
)

const (
	errorCodeInternalUndefined = "SYS_9001"
)

const (
	ExitCodeInternal     = 1
	ExitCodeInvalidInput = 2
)

// NewInvalidInputError creates a new ServiceError with category invalid_input.
// Input errors are fatal: the run stops before any output is written.
func NewInvalidInputError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidInput,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeInvalidInput,
	}
}

// NewInvalidConfigError creates a new ServiceError with category invalid_config.
func NewInvalidConfigError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidConfig,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeInvalidInput,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: ExitCodeInternal,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // invalid_input, invalid_config or internal
	Code     string // package-owned stable code (e.g. ING_1000)
	Message  string // human-readable
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit status
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil && !e.IsInternalError() {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
