package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NewNotFound("building", 999)

	assert.EqualError(t, err, "building 999 not found")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestNotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("listing organizations: %w", NewNotFound("activity", 10))

	assert.True(t, IsNotFound(err))
}

func TestValidation(t *testing.T) {
	err := NewValidation("radius_km must be positive")

	assert.EqualError(t, err, "radius_km must be positive")
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}

func TestPlainErrorMatchesNeither(t *testing.T) {
	err := errors.New("connection refused")

	assert.False(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}
