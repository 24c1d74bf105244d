package auth

import (
	"strings"
	"testing"

	apperrors "sheet-music-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	PasswordCost = bcrypt.MinCost
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, IsUsablePassword(hash))
	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "S3cret-pass"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := HashPassword("same")
	require.NoError(t, err)
	second, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestUnusablePassword(t *testing.T) {
	hash, err := HashPassword("")
	require.NoError(t, err)

	assert.False(t, IsUsablePassword(hash))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword(hash, hash))
	assert.NotEqual(t, MakeUnusablePassword(), MakeUnusablePassword())
	assert.False(t, IsUsablePassword(""))
}

func TestHashPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73))

	assert.True(t, apperrors.IsValidation(err))
}

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "Ana@EXAMPLE.com", expected: "Ana@example.com"},
		{in: "  bob@Example.Org ", expected: "bob@example.org"},
		{in: "no-at-sign", expected: "no-at-sign"},
		{in: "", expected: ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, NormalizeEmail(tc.in))
	}
}
