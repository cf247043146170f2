package errors

import (
	"context"
	"errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota

	// Request errors - the caller or the upstream rejected the location
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeClientRequest

	// Infrastructure errors - the upstream provider or the cache backend failed
	ErrorTypeProvider
	ErrorTypeNormalization
	ErrorTypeCacheUnavailable

	// System/Configuration errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeClientRequest:
		return "CLIENT_REQUEST_ERROR"
	case ErrorTypeProvider:
		return "PROVIDER_ERROR"
	case ErrorTypeNormalization:
		return "NORMALIZATION_ERROR"
	case ErrorTypeCacheUnavailable:
		return "CACHE_UNAVAILABLE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short constant names used across adapters
const (
	ValidationError       = ErrorTypeValidation
	NotFoundError         = ErrorTypeNotFound
	ClientRequestError    = ErrorTypeClientRequest
	ProviderError         = ErrorTypeProvider
	NormalizationError    = ErrorTypeNormalization
	CacheUnavailableError = ErrorTypeCacheUnavailable
	ConfigurationError    = ErrorTypeConfiguration
)

// AppError carries the error kind, a human-readable message and, for upstream
// failures, the HTTP status returned by the provider (0 when no response was received).
type AppError struct {
	Type    ErrorType
	Message string
	Status  int
	Cause   error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), msg)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Request error constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// NewClientRequestError reports a 4xx answer from the upstream provider.
func NewClientRequestError(status int, message string) *AppError {
	return &AppError{
		Type:    ClientRequestError,
		Message: message,
		Status:  status,
	}
}

// Infrastructure error constructors

// NewProviderError reports a 5xx answer or a transport failure. Use status 0 when
// no response was received.
func NewProviderError(status int, message string, cause error) *AppError {
	return &AppError{
		Type:    ProviderError,
		Message: message,
		Status:  status,
		Cause:   cause,
	}
}

func NewNormalizationError(message string, cause error) *AppError {
	return Wrap(NormalizationError, message, cause)
}

func NewCacheUnavailableError(message string, cause error) *AppError {
	return Wrap(CacheUnavailableError, message, cause)
}

// System/Configuration error constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// Helper functions for error type checking. They look through wrapped errors.

func typeOf(err error) (ErrorType, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type, true
	}
	return ErrorTypeUnknown, false
}

func IsValidationError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ValidationError
}

func IsNotFoundError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == NotFoundError
}

func IsClientRequestError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ClientRequestError
}

// IsProviderError is true for provider failures and for normalization failures,
// which are data-contract violations on the provider side.
func IsProviderError(err error) bool {
	t, ok := typeOf(err)
	return ok && (t == ProviderError || t == NormalizationError)
}

func IsNormalizationError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == NormalizationError
}

func IsCacheUnavailableError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == CacheUnavailableError
}

func IsConfigurationError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ConfigurationError
}

// StatusOf returns the upstream HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}

// TypeOf returns the ErrorType carried by err, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	t, _ := typeOf(err)
	return t
}

// IsCancelled reports whether err stems from the caller abandoning the request.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}
