package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwrapsToSentinel(t *testing.T) {
	err := NewNotFoundError("Could not find student")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "Could not find student", err.Error())

	// Sentinel identity survives further wrapping
	wrapped := fmt.Errorf("service: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "invalid name", Message(NewInvalidInputError("invalid name"), "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("driver failure"), "fallback"))
	assert.Equal(t, "fallback", Message(&CustomError{Err: ErrNotFound}, "fallback"))
}

func TestStoreFailureCarriesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreFailureError(cause, "store unavailable")

	assert.True(t, errors.Is(err, ErrStoreFailure))
	assert.Equal(t, "store unavailable", err.Error())

	var ce *CustomError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, cause, ce.Cause)
}
