package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := Validation("episode", "episode is required")
	assert.EqualError(t, err, "episode: episode is required")
	assert.True(t, IsValidation(err))
	assert.False(t, IsPermission(err))

	assert.EqualError(t, Validation("", "bad input"), "bad input")
}

func TestPermissionError(t *testing.T) {
	err := Permission("admin rights required")
	assert.EqualError(t, err, "admin rights required")
	assert.True(t, IsPermission(err))
	assert.False(t, IsValidation(err))
}

func TestCollaboratorErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Collaborator("photo upload", cause)

	assert.EqualError(t, err, "photo upload: connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	wrapped := Collaborator("outer", Validation("field", "inner"))
	assert.True(t, IsValidation(wrapped), "errors.As follows the chain")
}
