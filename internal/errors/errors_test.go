package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "group"}
		assert.Equal(t, "group not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "group"}
		err2 := &NotFoundError{Entity: "group"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "group"}
		err2 := &NotFoundError{Entity: "sheet music"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get group: %w", ErrGroupNotFound)
		assert.True(t, errors.Is(wrapped, ErrGroupNotFound))
		assert.False(t, errors.Is(wrapped, ErrSheetMusicNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrSheetMusicNotFound))
		assert.False(t, IsNotFound(ErrGroupNameExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "group already exists with this slug", ErrGroupSlugExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "group"}
		assert.Equal(t, "group already exists", err.Error())
	})

	t.Run("errors.Is distinguishes fields", func(t *testing.T) {
		assert.True(t, errors.Is(ErrGroupSlugExists, &AlreadyExistsError{Entity: "group", Field: "slug"}))
		assert.False(t, errors.Is(ErrGroupSlugExists, ErrGroupNameExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrSheetMusicTitleExists))
		assert.True(t, IsAlreadyExists(fmt.Errorf("create: %w", ErrUserExists)))
		assert.False(t, IsAlreadyExists(ErrGroupNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "url", Message: "Enter a valid URL."}
		assert.Equal(t, "validation error: url - Enter a valid URL.", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("group_id", "Select a valid choice.")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(ErrSuperuserNotStaff))
		assert.False(t, IsValidation(ErrGroupNotFound))
	})
}

func TestAuthenticationErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrUnauthorized))
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.Equal(t, "invalid email or password", ErrInvalidCredentials.Error())
	assert.False(t, IsAuthentication(ErrStaffRequired))
	assert.True(t, IsAuthorization(ErrStaffRequired))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("score", "title", "with this title")
		assert.Equal(t, "score already exists with this title", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("missing")
		assert.True(t, IsConfiguration(err))
		assert.True(t, IsConfiguration(ErrJWTSecretMissing))
	})
}
