package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "latitude out of range")
			},
			expected: "VALIDATION_ERROR: latitude out of range",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return Wrap(ProviderError, "Open-Meteo request failed", cause)
			},
			expected: "PROVIDER_ERROR: Open-Meteo request failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("original error")
	err := Wrap(StorageError, "read failed", cause)
	assert.Equal(t, cause, err.Unwrap())

	assert.Nil(t, New(NotFoundError, "missing").Unwrap())
}

func TestSpecificErrorConstructors(t *testing.T) {
	cause := fmt.Errorf("boom")

	tests := []struct {
		name         string
		err          *AppError
		expectedType ErrorType
		hasCause     bool
	}{
		{name: "Validation", err: NewValidationError("bad input"), expectedType: ValidationError},
		{name: "NotFound", err: NewNotFoundError("missing"), expectedType: NotFoundError},
		{name: "Geolocation", err: NewGeolocationError("TIMEOUT", cause), expectedType: GeolocationError, hasCause: true},
		{name: "Provider", err: NewProviderError("status 500", nil), expectedType: ProviderError},
		{name: "Storage", err: NewStorageError("malformed JSON", cause), expectedType: StorageError, hasCause: true},
		{name: "Database", err: NewDatabaseError("query failed", cause), expectedType: DatabaseError, hasCause: true},
		{name: "Configuration", err: NewConfigurationError("unknown provider", nil), expectedType: ConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedType, tt.err.Type)
			if tt.hasCause {
				assert.NotNil(t, tt.err.Cause)
			} else {
				assert.Nil(t, tt.err.Cause)
			}
		})
	}
}

func TestErrorTypes_String(t *testing.T) {
	assert.Equal(t, "PROVIDER_ERROR", ErrorTypeProvider.String())
	assert.Equal(t, "CONFIGURATION_ERROR", ErrorTypeConfiguration.String())
	assert.Equal(t, "GEOLOCATION_ERROR", ErrorTypeGeolocation.String())
	assert.Equal(t, "STORAGE_ERROR", ErrorTypeStorage.String())
	assert.Equal(t, "UNKNOWN_ERROR", ErrorType(99).String())
}

func TestTypeCheckers_FollowWrappedChain(t *testing.T) {
	base := NewProviderError("MSC-GeoMet returned status 503", nil)
	wrapped := fmt.Errorf("fetch weather: %w", base)

	assert.True(t, IsProviderError(wrapped))
	assert.False(t, IsConfigurationError(wrapped))
	assert.Equal(t, ProviderError, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))

	assert.True(t, IsConfigurationError(NewConfigurationError("x", nil)))
	assert.True(t, IsValidationError(NewValidationError("x")))
	assert.True(t, IsNotFoundError(NewNotFoundError("x")))
	assert.True(t, IsGeolocationError(NewGeolocationError("x", nil)))
	assert.True(t, IsStorageError(NewStorageError("x", nil)))
	assert.True(t, IsDatabaseError(NewDatabaseError("x", nil)))
}
