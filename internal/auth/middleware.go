package auth

import (
	"net/http"
	"net/url"
	"strings"

	apperrors "sheet-music-backend/internal/errors"
	"sheet-music-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	contextKeyClaims = "auth_claims"
)

// AuthMiddleware gates routes on a valid session handle
type AuthMiddleware struct {
	validator  SessionValidator
	cookieName string
	loginPath  string
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(validator SessionValidator, config *AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{
		validator:  validator,
		cookieName: config.CookieName,
		loginPath:  config.LoginPath,
	}
}

// RequireAuth validates the session handle and sets user context.
// Browsers are redirected to the login page; API clients get 401 with the login path.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c, m.cookieName)
		if token == "" {
			m.unauthorized(c, apperrors.ErrUnauthorized)
			return
		}

		// Validate token
		claims, err := m.validator.ValidateSession(token)
		if err != nil {
			if !apperrors.IsAuthentication(err) {
				logger.WithContext(c).WithError(err).Error("session validation failed")
			}
			m.unauthorized(c, err)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth validates the session handle if present but doesn't require it
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c, m.cookieName)
		if token == "" {
			// No handle, continue without setting user context
			c.Next()
			return
		}

		claims, err := m.validator.ValidateSession(token)
		if err == nil {
			setClaims(c, claims)
		}
		c.Next()
	}
}

// RequireStaff lets through active staff and superusers. It must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetUserEmail(c)
		if !ok {
			m.unauthorized(c, apperrors.ErrUnauthorized)
			return
		}

		err := m.validator.AuthorizeStaff(email)
		switch {
		case err == nil:
			c.Next()
		case apperrors.IsAuthorization(err):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			m.unauthorized(c, apperrors.ErrInvalidSession)
		default:
			logger.WithContext(c).WithError(err).Error("staff check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check permissions"})
		}
	}
}

func (m *AuthMiddleware) unauthorized(c *gin.Context, err error) {
	if WantsHTML(c) {
		target := m.loginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
		c.Abort()
		return
	}

	details := err.Error()
	if !apperrors.IsAuthentication(err) {
		details = apperrors.ErrInvalidSession.Error()
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    apperrors.ErrUnauthorized.Error(),
		"details":  details,
		"redirect": m.loginPath,
	})
}

// TokenFromRequest reads the session handle from the Authorization bearer header,
// falling back to the session cookie.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookieName == "" {
		return ""
	}
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

// WantsHTML reports whether the client prefers an HTML page over JSON
func WantsHTML(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	if accept == "" {
		return false
	}
	return c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML
}

func setClaims(c *gin.Context, claims *AuthClaims) {
	c.Set(logger.ContextKeyEmail, claims.Email)
	c.Set(contextKeyClaims, claims)
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(logger.ContextKeyEmail)
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(contextKeyClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
