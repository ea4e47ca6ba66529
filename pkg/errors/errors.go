package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to input and domain rules
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeGeolocation

	// Infrastructure Errors - errors related to upstream APIs and local storage
	ErrorTypeProvider
	ErrorTypeStorage
	ErrorTypeDatabase

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeGeolocation:
		return "GEOLOCATION_ERROR"
	case ErrorTypeProvider:
		return "PROVIDER_ERROR"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used by callers that switch on the error type
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	GeolocationError   = ErrorTypeGeolocation
	ProviderError      = ErrorTypeProvider
	StorageError       = ErrorTypeStorage
	DatabaseError      = ErrorTypeDatabase
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
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

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewGeolocationError(message string, cause error) *AppError {
	return Wrap(GeolocationError, message, cause)
}

// Infrastructure Error Constructors
func NewProviderError(message string, cause error) *AppError {
	return Wrap(ProviderError, message, cause)
}

func NewStorageError(message string, cause error) *AppError {
	return Wrap(StorageError, message, cause)
}

func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in the chain, or ErrorTypeUnknown
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsGeolocationError(err error) bool {
	return TypeOf(err) == GeolocationError
}

func IsProviderError(err error) bool {
	return TypeOf(err) == ProviderError
}

func IsStorageError(err error) bool {
	return TypeOf(err) == StorageError
}

func IsDatabaseError(err error) bool {
	return TypeOf(err) == DatabaseError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
