package auth

import (
	"testing"
	"time"

	"sheet-music-backend/internal/config"
	apperrors "sheet-music-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthConfig(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		cfg := &AuthConfig{JWTSecret: "test-signing-key", SessionTTL: time.Hour}

		require.NoError(t, cfg.ValidateConfig())
		assert.Equal(t, "sessionid", cfg.CookieName)
		assert.Equal(t, "sheet-music-backend", cfg.Issuer)
		assert.Equal(t, DefaultLoginPath, cfg.LoginPath)
		assert.Equal(t, DefaultHomePath, cfg.HomePath)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := &AuthConfig{SessionTTL: time.Hour}

		assert.ErrorIs(t, cfg.ValidateConfig(), apperrors.ErrJWTSecretMissing)
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := &AuthConfig{JWTSecret: "k"}

		assert.Error(t, cfg.ValidateConfig())
	})

	t.Run("from application config", func(t *testing.T) {
		cfg := NewAuthConfig(&config.Config{
			JWTSecret:           "k",
			SessionTTL:          2 * time.Hour,
			SessionCookieName:   "sm_session",
			SessionCookieSecure: true,
		})

		require.NoError(t, cfg.ValidateConfig())
		assert.Equal(t, "sm_session", cfg.CookieName)
		assert.True(t, cfg.CookieSecure)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	})
}

func TestSafeRedirect(t *testing.T) {
	testCases := []struct {
		next     string
		expected string
	}{
		{next: "", expected: "/home"},
		{next: "/api/v1/groups", expected: "/api/v1/groups"},
		{next: "/api/v1/sheet-music?q=ave", expected: "/api/v1/sheet-music?q=ave"},
		{next: "https://evil.example.com", expected: "/home"},
		{next: "//evil.example.com", expected: "/home"},
		{next: "/\\evil.example.com", expected: "/home"},
		{next: "relative/path", expected: "/home"},
	}

	for _, tc := range testCases {
		t.Run(tc.next, func(t *testing.T) {
			assert.Equal(t, tc.expected, safeRedirect(tc.next, "/home"))
		})
	}
}
