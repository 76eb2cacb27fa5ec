package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrValidation,
		ErrFormat,
		ErrNetwork,
		ErrStorage,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "session quote",
			id:          "abc",
			expectedMsg: `session quote with id "abc" not found`,
		},
		{
			name:        "with entity only",
			entity:      "quote",
			id:          "",
			expectedMsg: "quote not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "category",
			message:     "must not be empty",
			expectedMsg: "validation failed for category: must not be empty",
		},
		{
			name:        "without field",
			field:       "",
			message:     "general validation error",
			expectedMsg: "validation failed: general validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
			assert.Equal(t, tt.message, validation.Message)
		})
	}
}

func TestValidationError_WithValue(t *testing.T) {
	err := NewValidationErrorWithValue("category", "unknown category", "Nope")

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Nope", validation.Value)
}

func TestFormatError(t *testing.T) {
	t.Run("whole payload", func(t *testing.T) {
		err := NewFormatError("expected a JSON array")

		assert.Equal(t, "invalid format: expected a JSON array", err.Error())
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("single element", func(t *testing.T) {
		err := NewElementFormatError(2, "text must be a non-empty string")

		assert.Equal(t, "invalid format at element 2: text must be a non-empty string", err.Error())

		var format *FormatError
		require.ErrorAs(t, err, &format)
		assert.Equal(t, 2, format.Index)
	})
}

func TestNetworkError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "with reason",
			err:         NewNetworkError("remote", "fetch", "status 502"),
			expectedMsg: `service "remote" fetch failed: status 502`,
		},
		{
			name:        "without reason",
			err:         NewNetworkError("remote", "push", ""),
			expectedMsg: `service "remote" push failed`,
		},
		{
			name:        "with cause",
			err:         NewNetworkErrorWithCause("remote", "fetch", errors.New("connection refused")),
			expectedMsg: `service "remote" fetch failed: connection refused`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
			require.ErrorIs(t, tt.err, ErrNetwork)
		})
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("put", "quotes", cause)

	assert.Equal(t, `storage put "quotes" failed: disk full`, err.Error())
	require.ErrorIs(t, err, ErrStorage)

	var storage *StorageError
	require.ErrorAs(t, err, &storage)
	assert.Equal(t, cause, storage.Cause)
	assert.Equal(t, `storage get "x" failed`, NewStorageError("get", "x", nil).Error())
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isFunc   func(error) bool
		expected bool
	}{
		{"IsNotFound with NotFoundError", NewNotFoundError("quote", ""), IsNotFound, true},
		{"IsNotFound with wrapped", fmt.Errorf("wrapped: %w", ErrNotFound), IsNotFound, true},
		{"IsNotFound with other error", ErrFormat, IsNotFound, false},
		{"IsNotFound with nil", nil, IsNotFound, false},

		{"IsValidation with ValidationError", NewValidationError("text", "empty"), IsValidation, true},
		{"IsValidation with other error", ErrNotFound, IsValidation, false},

		{"IsFormat with FormatError", NewFormatError("not an array"), IsFormat, true},
		{"IsFormat with wrapped", fmt.Errorf("import: %w", ErrFormat), IsFormat, true},
		{"IsFormat with other error", ErrValidation, IsFormat, false},

		{"IsNetwork with NetworkError", NewNetworkError("remote", "fetch", ""), IsNetwork, true},
		{"IsNetwork with other error", ErrStorage, IsNetwork, false},
		{"IsNetwork with nil", nil, IsNetwork, false},

		{"IsStorage with StorageError", NewStorageError("put", "quotes", nil), IsStorage, true},
		{"IsStorage with wrapped", fmt.Errorf("persist: %w", ErrStorage), IsStorage, true},
		{"IsStorage with other error", ErrNetwork, IsStorage, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.isFunc(tt.err))
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	original := NewNetworkError("remote", "fetch", "timeout")
	wrapped := fmt.Errorf("layer2: %w", fmt.Errorf("layer1: %w", original))

	assert.True(t, IsNetwork(wrapped))

	var network *NetworkError
	require.ErrorAs(t, wrapped, &network)
	assert.Equal(t, "fetch", network.Op)
}
