package auth

import (
	"fmt"
	"time"

	"sheet-music-backend/internal/config"
	apperrors "sheet-music-backend/internal/errors"
)

const (
	DefaultLoginPath = "/api/v1/auth/login"
	DefaultHomePath  = "/api/v1/sheet-music"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret    string
	Issuer       string
	SessionTTL   time.Duration
	CookieName   string
	CookieSecure bool
	// LoginPath is where unauthenticated browsers are sent
	LoginPath string
	// HomePath is where browsers land after login
	HomePath string
}

// NewAuthConfig derives the authentication settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:    cfg.JWTSecret,
		Issuer:       "sheet-music-backend",
		SessionTTL:   cfg.SessionTTL,
		CookieName:   cfg.SessionCookieName,
		CookieSecure: cfg.SessionCookieSecure,
		LoginPath:    DefaultLoginPath,
		HomePath:     DefaultHomePath,
	}
}

// ValidateConfig validates the authentication configuration and fills optional defaults
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return apperrors.ErrJWTSecretMissing
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	if c.CookieName == "" {
		c.CookieName = "sessionid"
	}
	if c.Issuer == "" {
		c.Issuer = "sheet-music-backend"
	}
	if c.LoginPath == "" {
		c.LoginPath = DefaultLoginPath
	}
	if c.HomePath == "" {
		c.HomePath = DefaultHomePath
	}
	return nil
}
