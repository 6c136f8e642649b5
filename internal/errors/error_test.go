package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	err := New(ErrorTypeConfiguration, "validate", "log level unknown")
	assert.Equal(t, "[configuration] validate: log level unknown", err.Error())

	cause := errors.New("disk full")
	err = Wrap(cause, ErrorTypeStorage, "export", "write parquet")
	assert.Equal(t, "[storage] export: write parquet: disk full", err.Error())
	assert.Equal(t, cause, err.Unwrap())
	assert.ErrorIs(t, err, cause)
}

func TestStructuredError_WithContext(t *testing.T) {
	err := NewComputationError("period", "generator did not return to zero").
		WithContext("bits", 8).
		WithContext("steps", uint64(256))

	assert.Equal(t, 8, err.Context["bits"])
	assert.Equal(t, uint64(256), err.Context["steps"])
}

func TestStructuredError_Is(t *testing.T) {
	err := WrapComputationError(errors.New("canceled"), "suite", "run aborted")

	assert.True(t, errors.Is(err, &StructuredError{Type: ErrorTypeComputation}))
	assert.True(t, errors.Is(err, &StructuredError{Type: ErrorTypeComputation, Operation: "suite"}))
	assert.False(t, errors.Is(err, &StructuredError{Type: ErrorTypeStorage}))
	assert.False(t, errors.Is(err, &StructuredError{Type: ErrorTypeComputation, Operation: "export"}))
}

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("x")

	assert.Equal(t, ErrorTypeConfiguration, NewConfigurationError("op", "msg").Type)
	assert.Equal(t, ErrorTypeComputation, NewComputationError("op", "msg").Type)
	assert.Equal(t, ErrorTypeConfiguration, WrapConfigurationError(cause, "op", "msg").Type)
	assert.Equal(t, ErrorTypeComputation, WrapComputationError(cause, "op", "msg").Type)
	assert.Equal(t, ErrorTypeStorage, WrapStorageError(cause, "op", "msg").Type)
	assert.Nil(t, Wrap(nil, ErrorTypeStorage, "op", "msg"))
}

func TestStackTraceCapture(t *testing.T) {
	err := New(ErrorTypeComputation, "test", "message")
	assert.Greater(t, len(err.Stack), 0)
}
